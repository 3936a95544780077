package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// ErrReorderInFlight is returned when a reorder is started while a previous
// one has not yet settled. The caller should retry after it resolves.
var ErrReorderInFlight = errors.New("a reorder is already in flight")

type jobsActionKind int

const (
	jobsActionNone jobsActionKind = iota
	jobsActionFetch
	jobsActionUpdate
	jobsActionDelete
	jobsActionArchive
	jobsActionUnarchive
	jobsActionReorder
)

// jobsAction is the replayable record of the store's last action. Commands
// carry their arguments so retry is explicit rather than a captured closure.
type jobsAction struct {
	kind   jobsActionKind
	id     string
	patch  model.JobPatch
	jobIDs []string
}

// JobsStore caches the job list and applies optimistic reordering. All
// filtering and pagination of jobs happens client-side over the snapshot.
type JobsStore struct {
	api *apiclient.Client
	ui  *UIStore
	log *zap.Logger

	perPage int

	mu              sync.Mutex
	jobs            []model.Job
	loading         bool
	lastError       string
	filter          JobsFilter
	last            jobsAction
	reorderInFlight bool
}

func NewJobsStore(api *apiclient.Client, ui *UIStore, perPage int, log *zap.Logger) *JobsStore {
	if perPage < 1 {
		perPage = 10
	}
	return &JobsStore{
		api:     api,
		ui:      ui,
		log:     log,
		perPage: perPage,
		jobs:    make([]model.Job, 0),
		filter:  JobsFilter{Status: "all", Type: "all", Page: 1},
	}
}

// Fetch replaces the snapshot wholesale. Failures are absorbed into the
// store's error state and the banner; the stale snapshot is kept.
func (s *JobsStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.last = jobsAction{kind: jobsActionFetch}
	s.mu.Unlock()
	s.ui.SetLoading(true)

	jobs, err := s.api.ListJobs(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.jobs = jobs
		s.lastError = ""
	}
	s.mu.Unlock()
	s.ui.SetLoading(false)

	if err != nil {
		s.log.Warn("jobs_store: fetch failed", zap.Error(err))
		s.ui.SetError(err.Error())
	}
}

// Add creates a job and appends it to the snapshot. Creations are not
// recorded as retry targets.
func (s *JobsStore) Add(ctx context.Context, req model.CreateJobRequest) (model.Job, error) {
	job, err := s.api.CreateJob(ctx, req)
	if err != nil {
		s.recordError(err)
		return model.Job{}, err
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.lastError = ""
	s.mu.Unlock()
	return job, nil
}

// Update patches a job and merges the server's record into the snapshot.
func (s *JobsStore) Update(ctx context.Context, id string, patch model.JobPatch) (model.Job, error) {
	s.setLast(jobsAction{kind: jobsActionUpdate, id: id, patch: patch})

	job, err := s.api.UpdateJob(ctx, id, patch)
	if err != nil {
		s.recordError(err)
		return model.Job{}, err
	}

	s.mergeJob(job)
	return job, nil
}

// Delete removes a job from the server and the snapshot.
func (s *JobsStore) Delete(ctx context.Context, id string) error {
	s.setLast(jobsAction{kind: jobsActionDelete, id: id})

	if err := s.api.DeleteJob(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

// Archive sets the archived flag on a job.
func (s *JobsStore) Archive(ctx context.Context, id string) error {
	s.setLast(jobsAction{kind: jobsActionArchive, id: id})
	return s.setArchived(ctx, id, true)
}

// Unarchive clears the archived flag on a job.
func (s *JobsStore) Unarchive(ctx context.Context, id string) error {
	s.setLast(jobsAction{kind: jobsActionUnarchive, id: id})
	return s.setArchived(ctx, id, false)
}

func (s *JobsStore) setArchived(ctx context.Context, id string, archived bool) error {
	var (
		job model.Job
		err error
	)
	if archived {
		job, err = s.api.ArchiveJob(ctx, id)
	} else {
		job, err = s.api.UnarchiveJob(ctx, id)
	}
	if err != nil {
		s.recordError(err)
		return err
	}

	s.mergeJob(job)
	return nil
}

// Reorder moves the job at source to dest within the current snapshot,
// renders the new order immediately and then confirms it with the server.
// On failure the snapshot is rolled back to the captured pre-reorder state.
// A second reorder while one is unsettled is rejected.
func (s *JobsStore) Reorder(ctx context.Context, source, dest int) error {
	s.mu.Lock()
	if s.reorderInFlight {
		s.mu.Unlock()
		return ErrReorderInFlight
	}
	if source < 0 || source >= len(s.jobs) || dest < 0 || dest >= len(s.jobs) {
		s.mu.Unlock()
		return fmt.Errorf("reorder out of range: %d -> %d with %d jobs", source, dest, len(s.jobs))
	}

	snapshot := append([]model.Job(nil), s.jobs...)

	moved := s.jobs[source]
	s.jobs = append(s.jobs[:source], s.jobs[source+1:]...)
	s.jobs = append(s.jobs[:dest], append([]model.Job{moved}, s.jobs[dest:]...)...)

	jobIDs := make([]string, len(s.jobs))
	for i, job := range s.jobs {
		jobIDs[i] = job.ID
	}

	s.reorderInFlight = true
	s.last = jobsAction{kind: jobsActionReorder, jobIDs: jobIDs}
	s.mu.Unlock()

	return s.settleReorder(ctx, jobIDs, snapshot)
}

// settleReorder submits the desired order and reconciles: server order on
// success, rollback snapshot on failure. A nil snapshot (retry path) keeps
// the current snapshot on failure.
func (s *JobsStore) settleReorder(ctx context.Context, jobIDs []string, snapshot []model.Job) error {
	jobs, err := s.api.ReorderJobs(ctx, jobIDs)

	s.mu.Lock()
	s.reorderInFlight = false
	if err != nil {
		if snapshot != nil {
			s.jobs = snapshot
		}
		s.lastError = err.Error()
	} else {
		s.jobs = jobs
		s.lastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("jobs_store: reorder failed, rolled back", zap.Error(err))
		s.ui.SetError(err.Error())
		return err
	}
	return nil
}

// ValidateSlug asks the server whether a slug is free. Validation is advisory
// for inline forms, so transport errors fail open.
func (s *JobsStore) ValidateSlug(ctx context.Context, slug, excludeID string) bool {
	valid, err := s.api.ValidateSlug(ctx, slug, excludeID)
	if err != nil {
		s.log.Warn("jobs_store: slug validation unavailable", zap.Error(err))
		return true
	}
	return valid
}

// Retry replays the store's last recorded action.
func (s *JobsStore) Retry(ctx context.Context) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	switch last.kind {
	case jobsActionFetch:
		s.Fetch(ctx)
	case jobsActionUpdate:
		_, _ = s.Update(ctx, last.id, last.patch)
	case jobsActionDelete:
		_ = s.Delete(ctx, last.id)
	case jobsActionArchive:
		_ = s.Archive(ctx, last.id)
	case jobsActionUnarchive:
		_ = s.Unarchive(ctx, last.id)
	case jobsActionReorder:
		_ = s.settleReorder(ctx, last.jobIDs, nil)
	}
}

// Jobs returns a copy of the full snapshot.
func (s *JobsStore) Jobs() []model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Job(nil), s.jobs...)
}

// Visible applies the current filter state to the snapshot and returns the
// current page plus the total page count.
func (s *JobsStore) Visible() ([]model.Job, int) {
	s.mu.Lock()
	jobs := append([]model.Job(nil), s.jobs...)
	filter := s.filter
	s.mu.Unlock()

	return Paginate(FilterJobs(jobs, filter), filter.Page, s.perPage)
}

// SetFilter replaces the filter state and resets to the first page when
// anything other than the page itself changed.
func (s *JobsStore) SetFilter(f JobsFilter) {
	s.mu.Lock()
	if f.Page == s.filter.Page && f != s.filter {
		f.Page = 1
	}
	if f.Page < 1 {
		f.Page = 1
	}
	s.filter = f
	s.mu.Unlock()
}

func (s *JobsStore) Filter() JobsFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *JobsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *JobsStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Reset clears the snapshot, filter state and the recorded action.
func (s *JobsStore) Reset() {
	s.mu.Lock()
	s.jobs = make([]model.Job, 0)
	s.loading = false
	s.lastError = ""
	s.filter = JobsFilter{Status: "all", Type: "all", Page: 1}
	s.last = jobsAction{}
	s.reorderInFlight = false
	s.mu.Unlock()
}

func (s *JobsStore) setLast(a jobsAction) {
	s.mu.Lock()
	s.last = a
	s.mu.Unlock()
}

func (s *JobsStore) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	s.ui.SetError(err.Error())
}

func (s *JobsStore) mergeJob(job model.Job) {
	s.mu.Lock()
	merged := false
	for i := range s.jobs {
		if s.jobs[i].ID == job.ID {
			s.jobs[i] = job
			merged = true
			break
		}
	}
	if !merged {
		s.jobs = append(s.jobs, job)
	}
	s.lastError = ""
	s.mu.Unlock()
}
