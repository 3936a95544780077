package sim_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/internal/fixture"
	"github.com/vivo1806/Talent-Flow/internal/seed"
	"github.com/vivo1806/Talent-Flow/internal/sim"
	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

type testEnv struct {
	store     *store.Store
	simulator *sim.Simulator
	client    *apiclient.Client
}

// newTestEnv builds a migrated, seeded store plus a simulator with zero
// latency and the given failure rate, reached through an in-process client.
func newTestEnv(t *testing.T, candidates int, failureRate float64) *testEnv {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(ctx))
	require.NoError(t, seed.New(st, zap.NewNop()).Run(ctx))

	simulator := sim.New(st, fixture.Candidates(candidates, 1), sim.Config{
		FailureRate: failureRate,
		Seed:        1,
		CurrentUser: "John Doe",
	}, zap.NewNop())

	return &testEnv{
		store:     st,
		simulator: simulator,
		client:    apiclient.NewInProcess(simulator.Routes()),
	}
}

func TestJobRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	created, err := env.client.CreateJob(ctx, model.CreateJobRequest{
		Title:        "Go Developer",
		Company:      "Acme",
		Location:     "Remote",
		Type:         model.JobTypeFullTime,
		Salary:       "$100k",
		Requirements: []string{"Go"},
		Slug:         "go-developer-acme",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, model.JobStatusOpen, created.Status)
	require.False(t, created.PostedAt.IsZero())
	require.Equal(t, 12, created.Order) // baseline occupies 0..11

	got, err := env.client.GetJob(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, created.Order, got.Order)

	_, err = env.client.GetJob(ctx, "no-such-job")
	require.True(t, apiclient.IsNotFound(err))
}

func TestReorderJobsEndpoint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	jobs, err := env.client.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 12)

	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[len(jobs)-1-i] = job.ID
	}

	reordered, err := env.client.ReorderJobs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, reordered, 12)
	for i, job := range reordered {
		require.Equal(t, ids[i], job.ID)
		require.Equal(t, i, job.Order)
	}
}

func TestArchiveUnarchive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	job, err := env.client.ArchiveJob(ctx, "1")
	require.NoError(t, err)
	require.True(t, job.Archived)

	job, err = env.client.UnarchiveJob(ctx, "1")
	require.NoError(t, err)
	require.False(t, job.Archived)
}

func TestValidateSlug(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	valid, err := env.client.ValidateSlug(ctx, "senior-react-developer-1", "")
	require.NoError(t, err)
	require.False(t, valid)

	valid, err = env.client.ValidateSlug(ctx, "senior-react-developer-1", "1")
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = env.client.ValidateSlug(ctx, "a-brand-new-slug", "")
	require.NoError(t, err)
	require.True(t, valid)
}

func TestCandidatePagination(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1500, 0)

	page, err := env.client.ListCandidates(ctx, apiclient.CandidateQuery{Page: 2, Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Data, 50)
	require.Equal(t, 2, page.Pagination.Page)
	require.Equal(t, 1500, page.Pagination.Total)
	require.Equal(t, 30, page.Pagination.TotalPages)
	require.Equal(t, "candidate-51", page.Data[0].ID)

	// a page past the end is empty, never an error
	page, err = env.client.ListCandidates(ctx, apiclient.CandidateQuery{Page: 99, Limit: 50})
	require.NoError(t, err)
	require.Empty(t, page.Data)
}

func TestCandidateSearchAndStatusFilter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 100, 0)

	all, err := env.client.ListCandidates(ctx, apiclient.CandidateQuery{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all.Data, 100)

	target := all.Data[0]
	found, err := env.client.ListCandidates(ctx, apiclient.CandidateQuery{Search: target.Email})
	require.NoError(t, err)
	require.NotEmpty(t, found.Data)
	for _, c := range found.Data {
		require.Equal(t, target.Email, c.Email)
	}

	offers, err := env.client.ListCandidates(ctx, apiclient.CandidateQuery{Status: "offer", Limit: 100})
	require.NoError(t, err)
	for _, c := range offers.Data {
		require.Equal(t, model.CandidateStatusOffer, c.Status)
	}
}

func TestStatusHistoryAppendsOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 10, 0)

	cand, err := env.client.GetCandidate(ctx, "candidate-1")
	require.NoError(t, err)

	// a no-op write leaves history empty
	_, err = env.client.UpdateCandidateStatus(ctx, "candidate-1", cand.Status)
	require.NoError(t, err)
	history, err := env.client.CandidateHistory(ctx, "candidate-1")
	require.NoError(t, err)
	require.Empty(t, history)

	next := model.CandidateStatusOffer
	if cand.Status == model.CandidateStatusOffer {
		next = model.CandidateStatusRejected
	}
	updated, err := env.client.UpdateCandidateStatus(ctx, "candidate-1", next)
	require.NoError(t, err)
	require.Equal(t, next, updated.Status)

	history, err = env.client.CandidateHistory(ctx, "candidate-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].From)
	require.Equal(t, cand.Status, *history[0].From)
	require.Equal(t, next, history[0].To)
	require.Equal(t, "John Doe", history[0].ChangedBy)
}

func TestCandidateNotesAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 10, 0)

	note := model.Note{
		ID: "n1", CandidateID: "candidate-2", Text: "solid @Alice Johnson",
		Mentions: []string{"Alice Johnson"}, CreatedBy: "John Doe",
	}
	created, err := env.client.AddCandidateNote(ctx, "candidate-2", note)
	require.NoError(t, err)
	require.Equal(t, note.Text, created.Text)

	cand, err := env.client.GetCandidate(ctx, "candidate-2")
	require.NoError(t, err)
	require.Len(t, cand.Notes, 1)

	require.NoError(t, env.client.DeleteCandidate(ctx, "candidate-2"))
	_, err = env.client.GetCandidate(ctx, "candidate-2")
	require.True(t, apiclient.IsNotFound(err))

	_, err = env.client.AddCandidateNote(ctx, "candidate-2", note)
	require.True(t, apiclient.IsNotFound(err))
}

func TestAssessmentConflict(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	// job 1 already carries a baseline assessment
	_, err := env.client.CreateAssessment(ctx, model.CreateAssessmentRequest{
		JobID: "1", Title: "Duplicate", Duration: 30, PassingScore: 50,
	})
	require.True(t, apiclient.IsConflict(err))
	require.EqualError(t, err, "Assessment already exists for this job")

	created, err := env.client.CreateAssessment(ctx, model.CreateAssessmentRequest{
		JobID: "3", Title: "Frontend Quiz", Duration: 45, PassingScore: 60,
		Questions: []model.Question{{ID: "q1", Text: "?", Type: model.QuestionTypeShortAnswer}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	byJob, err := env.client.GetAssessmentByJob(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, created.ID, byJob.ID)

	_, err = env.client.GetAssessmentByJob(ctx, "11")
	require.True(t, apiclient.IsNotFound(err))
}

func TestAssessmentUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	title := "Renamed Assessment"
	updated, err := env.client.UpdateAssessment(ctx, "1", model.AssessmentPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed Assessment", updated.Title)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestApplicationsFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 0)

	app, err := env.client.SubmitApplication(ctx, model.SubmitApplicationRequest{
		JobID: "1", CandidateName: "Jane Roe", Email: "jane@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, model.ApplicationStatusPending, app.Status)
	require.False(t, app.AppliedAt.IsZero())

	apps, err := env.client.ListApplications(ctx, "1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, app.ID, apps[0].ID)
}

func TestFaultInjectionFailsBeforeMutation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 10, 1) // every call fails

	before, err := env.store.CountJobs(ctx)
	require.NoError(t, err)

	_, err = env.client.CreateJob(ctx, model.CreateJobRequest{
		Title: "Never Created", Company: "Acme", Type: model.JobTypeFullTime,
	})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 500, apiErr.StatusCode)
	require.Equal(t, "Network error: Failed to create job", apiErr.Message)

	after, err := env.store.CountJobs(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestValidateSlugSkipsFaultInjection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 0, 1)

	valid, err := env.client.ValidateSlug(ctx, "some-free-slug", "")
	require.NoError(t, err)
	require.True(t, valid)
}
