// Package state holds the client-side domain stores: per-domain snapshots of
// server state, loading and error bookkeeping, optimistic reordering with
// rollback, and a replayable last-action record per store. The stores are
// owned by a single App instance with explicit construction and reset, so
// there is no ambient shared state.
package state

import (
	"context"

	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
)

// Options tunes the session-level behavior of the stores.
type Options struct {
	// CurrentUser is the display name recorded on authored notes.
	CurrentUser string
	// JobsPerPage is the client-side page size for the jobs list.
	JobsPerPage int
	// CandidatePageSize is the server-side page size for candidate fetches.
	CandidatePageSize int
}

// App aggregates the domain stores over one API client.
type App struct {
	UI          *UIStore
	Jobs        *JobsStore
	Candidates  *CandidatesStore
	Assessments *AssessmentsStore
}

func NewApp(api *apiclient.Client, log *zap.Logger, opts Options) *App {
	ui := NewUIStore()
	return &App{
		UI:          ui,
		Jobs:        NewJobsStore(api, ui, opts.JobsPerPage, log),
		Candidates:  NewCandidatesStore(api, ui, opts.CurrentUser, opts.CandidatePageSize, log),
		Assessments: NewAssessmentsStore(api, ui, log),
	}
}

// RetryLastActions clears the error banner once, then replays the last
// recorded action of every domain store. Retry always repeats the latest
// action per store, not a queue of failed ones.
func (a *App) RetryLastActions(ctx context.Context) {
	a.UI.ClearError()
	a.Jobs.Retry(ctx)
	a.Candidates.Retry(ctx)
	a.Assessments.Retry(ctx)
}

// Reset returns every store to its initial empty state.
func (a *App) Reset() {
	a.UI.ClearError()
	a.UI.SetLoading(false)
	a.Jobs.Reset()
	a.Candidates.Reset()
	a.Assessments.Reset()
}
