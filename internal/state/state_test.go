package state_test

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/internal/fixture"
	"github.com/vivo1806/Talent-Flow/internal/seed"
	"github.com/vivo1806/Talent-Flow/internal/sim"
	"github.com/vivo1806/Talent-Flow/internal/state"
	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// gate wraps the simulated API and fails any request whose path contains the
// configured fragment, so tests can break one endpoint at a time.
type gate struct {
	inner http.Handler

	mu       sync.Mutex
	failPath string
}

func (g *gate) setFailPath(fragment string) {
	g.mu.Lock()
	g.failPath = fragment
	g.mu.Unlock()
}

func (g *gate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	fragment := g.failPath
	g.mu.Unlock()

	if fragment != "" && strings.Contains(r.URL.Path, fragment) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Network error: injected"}`))
		return
	}
	g.inner.ServeHTTP(w, r)
}

type env struct {
	app       *state.App
	gate      *gate
	transport *apiclient.HandlerTransport
	store     *store.Store
}

func newEnv(t *testing.T, candidates int) *env {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(ctx))
	require.NoError(t, seed.New(st, zap.NewNop()).Run(ctx))

	simulator := sim.New(st, fixture.Candidates(candidates, 1), sim.Config{
		Seed:        1,
		CurrentUser: "John Doe",
	}, zap.NewNop())

	g := &gate{inner: simulator.Routes()}
	tr := apiclient.NewHandlerTransport(g)
	client := apiclient.NewWithTransport(tr)

	app := state.NewApp(client, zap.NewNop(), state.Options{
		CurrentUser:       "John Doe",
		JobsPerPage:       10,
		CandidatePageSize: 50,
	})

	return &env{app: app, gate: g, transport: tr, store: st}
}

func jobIDs(jobs []model.Job) []string {
	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}
	return ids
}

func TestFetchPopulatesSnapshot(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)

	e.app.Jobs.Fetch(ctx)
	require.Len(t, e.app.Jobs.Jobs(), 12)
	require.Empty(t, e.app.Jobs.LastError())
	require.Empty(t, e.app.UI.Error())
}

func TestFetchFailureIsAbsorbed(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)

	e.app.Jobs.Fetch(ctx)
	before := e.app.Jobs.Jobs()

	e.gate.setFailPath("/api/jobs")
	e.app.Jobs.Fetch(ctx)

	// stale snapshot kept, error recorded, banner raised
	require.Equal(t, jobIDs(before), jobIDs(e.app.Jobs.Jobs()))
	require.NotEmpty(t, e.app.Jobs.LastError())
	require.Equal(t, "Network error: injected", e.app.UI.Error())
}

func TestMutationMergesByID(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	title := "Principal React Developer"
	updated, err := e.app.Jobs.Update(ctx, "1", model.JobPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)

	jobs := e.app.Jobs.Jobs()
	require.Len(t, jobs, 12)
	for _, job := range jobs {
		if job.ID == "1" {
			require.Equal(t, title, job.Title)
		}
	}
}

func TestMutationFailureRecordedAndReturned(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	e.gate.setFailPath("/api/jobs/1")
	title := "Unreachable"
	_, err := e.app.Jobs.Update(ctx, "1", model.JobPatch{Title: &title})
	require.Error(t, err)
	require.Equal(t, err.Error(), e.app.Jobs.LastError())
	require.Equal(t, err.Error(), e.app.UI.Error())
}

func TestReorderOptimisticUpdateVisibleMidFlight(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	before := jobIDs(e.app.Jobs.Jobs())

	var midFlight []string
	e.transport.Before = func(r *http.Request) {
		if strings.Contains(r.URL.Path, "reorder") {
			midFlight = jobIDs(e.app.Jobs.Jobs())
		}
	}

	require.NoError(t, e.app.Jobs.Reorder(ctx, 0, 2))

	// the splice was rendered before the network call went out
	require.Len(t, midFlight, 12)
	require.Equal(t, before[1], midFlight[0])
	require.Equal(t, before[2], midFlight[1])
	require.Equal(t, before[0], midFlight[2])
	require.Equal(t, before[3:], midFlight[3:])

	// server-confirmed ordering adopted on success
	require.Equal(t, midFlight, jobIDs(e.app.Jobs.Jobs()))
}

func TestReorderRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	before := e.app.Jobs.Jobs()
	e.gate.setFailPath("reorder")

	err := e.app.Jobs.Reorder(ctx, 0, 5)
	require.Error(t, err)

	after := e.app.Jobs.Jobs()
	require.Equal(t, jobIDs(before), jobIDs(after))
	for i := range before {
		require.Equal(t, before[i], after[i])
	}
	require.NotEmpty(t, e.app.UI.Error())
}

func TestSecondReorderWhileInFlightIsRejected(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	var second error
	e.transport.Before = func(r *http.Request) {
		if strings.Contains(r.URL.Path, "reorder") && second == nil {
			second = e.app.Jobs.Reorder(ctx, 3, 4)
		}
	}

	require.NoError(t, e.app.Jobs.Reorder(ctx, 0, 1))
	require.ErrorIs(t, second, state.ErrReorderInFlight)
}

func TestReorderOutOfRange(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	require.Error(t, e.app.Jobs.Reorder(ctx, -1, 3))
	require.Error(t, e.app.Jobs.Reorder(ctx, 0, 50))
}

func TestRetryReplaysLastAction(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	e.gate.setFailPath("/api/jobs/2")
	title := "Retried Title"
	_, err := e.app.Jobs.Update(ctx, "2", model.JobPatch{Title: &title})
	require.Error(t, err)
	require.NotEmpty(t, e.app.UI.Error())

	e.gate.setFailPath("")
	e.app.RetryLastActions(ctx)

	require.Empty(t, e.app.UI.Error())
	for _, job := range e.app.Jobs.Jobs() {
		if job.ID == "2" {
			require.Equal(t, title, job.Title)
		}
	}
}

func TestRetryRepeatsOnlyTheLatestAction(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)
	e.app.Jobs.Fetch(ctx)

	titleA := "First"
	_, err := e.app.Jobs.Update(ctx, "1", model.JobPatch{Title: &titleA})
	require.NoError(t, err)

	// a later delete supersedes the update as the retry target
	require.NoError(t, e.app.Jobs.Delete(ctx, "9"))
	require.Len(t, e.app.Jobs.Jobs(), 11)

	e.app.RetryLastActions(ctx)

	// replaying the delete is a no-op server-side; the update is not rerun
	require.Len(t, e.app.Jobs.Jobs(), 11)
}

func TestCandidateFetchAndFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 120)

	e.app.Candidates.Fetch(ctx, 1)
	require.Len(t, e.app.Candidates.Candidates(), 50)
	require.Equal(t, 120, e.app.Candidates.Pagination().Total)
	require.Equal(t, 3, e.app.Candidates.Pagination().TotalPages)

	target := e.app.Candidates.Candidates()[0]
	e.app.Candidates.SetSearch(target.Email)
	e.app.Candidates.Fetch(ctx, 1)
	for _, c := range e.app.Candidates.Candidates() {
		require.Equal(t, target.Email, c.Email)
	}
}

func TestCandidateRetryUsesCurrentFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 60)

	e.app.Candidates.Fetch(ctx, 1)
	target := e.app.Candidates.Candidates()[0]

	// the filter set after the recorded fetch is what the replay sends
	e.app.Candidates.SetSearch(target.Email)
	e.app.RetryLastActions(ctx)

	require.NotEmpty(t, e.app.Candidates.Candidates())
	for _, c := range e.app.Candidates.Candidates() {
		require.Equal(t, target.Email, c.Email)
	}
}

func TestAddNoteAuthorsAsCurrentUser(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 10)
	e.app.Candidates.Fetch(ctx, 1)

	note, err := e.app.Candidates.AddNote(ctx, "candidate-1", "great interview @Alice Johnson", []string{"Alice Johnson"})
	require.NoError(t, err)
	require.NotEmpty(t, note.ID)
	require.Equal(t, "John Doe", note.CreatedBy)
	require.False(t, note.CreatedAt.IsZero())

	for _, c := range e.app.Candidates.Candidates() {
		if c.ID == "candidate-1" {
			require.Len(t, c.Notes, 1)
		}
	}
}

func TestCandidateStatusUpdateMerges(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 10)
	e.app.Candidates.Fetch(ctx, 1)

	cand := e.app.Candidates.Candidates()[0]
	next := model.CandidateStatusInterview
	if cand.Status == next {
		next = model.CandidateStatusOffer
	}

	updated, err := e.app.Candidates.UpdateStatus(ctx, cand.ID, next)
	require.NoError(t, err)
	require.Equal(t, next, updated.Status)

	history, err := e.app.Candidates.History(ctx, cand.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestAssessmentsStore(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)

	e.app.Assessments.Fetch(ctx)
	require.Len(t, e.app.Assessments.Assessments(), 2)

	// a job without an assessment yields nil with no error
	a, err := e.app.Assessments.ByJobID(ctx, "11")
	require.NoError(t, err)
	require.Nil(t, a)

	a, err = e.app.Assessments.ByJobID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, a)

	_, err = e.app.Assessments.Create(ctx, model.CreateAssessmentRequest{
		JobID: "1", Title: "Duplicate", Duration: 30, PassingScore: 50,
	})
	require.Error(t, err)
	require.Equal(t, "Assessment already exists for this job", e.app.Assessments.LastError())

	title := "Retitled"
	updated, err := e.app.Assessments.Update(ctx, "2", model.AssessmentPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Retitled", updated.Title)

	require.NoError(t, e.app.Assessments.Delete(ctx, "2"))
	require.Len(t, e.app.Assessments.Assessments(), 1)
}

func TestValidateSlugFailsOpen(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0)

	e.gate.setFailPath("validate-slug")
	require.True(t, e.app.Jobs.ValidateSlug(ctx, "senior-react-developer-1", ""))

	e.gate.setFailPath("")
	require.False(t, e.app.Jobs.ValidateSlug(ctx, "senior-react-developer-1", ""))
	require.True(t, e.app.Jobs.ValidateSlug(ctx, "senior-react-developer-1", "1"))
}

func TestAppReset(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 10)

	e.app.Jobs.Fetch(ctx)
	e.app.Candidates.Fetch(ctx, 1)
	e.app.UI.SetError("boom")

	e.app.Reset()

	require.Empty(t, e.app.Jobs.Jobs())
	require.Empty(t, e.app.Candidates.Candidates())
	require.Empty(t, e.app.UI.Error())
}
