package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

func openSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := openSeededStore(t)
	seeder := New(st, zap.NewNop())

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	jobCount, err := st.CountJobs(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, jobCount)

	assessmentCount, err := st.CountAssessments(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, assessmentCount)
}

func TestBaselineJobs(t *testing.T) {
	ctx := context.Background()
	st := openSeededStore(t)
	require.NoError(t, New(st, zap.NewNop()).Run(ctx))

	jobs, err := st.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 12)

	first := jobs[0]
	require.Equal(t, "1", first.ID)
	require.Equal(t, "Senior React Developer", first.Title)
	require.Equal(t, "TechCorp", first.Company)
	require.Equal(t, "senior-react-developer-1", first.Slug)
	require.Equal(t, model.JobStatusOpen, first.Status)
	require.False(t, first.Archived)

	for i, job := range jobs {
		require.Equal(t, i, job.Order)
		require.NotEmpty(t, job.Slug)
	}

	closed := 0
	for _, job := range jobs {
		if job.Status == model.JobStatusClosed {
			closed++
		}
	}
	require.Equal(t, 2, closed)
}

func TestBaselineAssessmentsCoverAllQuestionTypes(t *testing.T) {
	ctx := context.Background()
	st := openSeededStore(t)
	require.NoError(t, New(st, zap.NewNop()).Run(ctx))

	assessments, err := st.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, assessments, 2)

	seen := map[model.QuestionType]bool{}
	for _, a := range assessments {
		require.NotEmpty(t, a.JobID)
		for _, q := range a.Questions {
			seen[q.Type] = true
		}
	}
	require.True(t, seen[model.QuestionTypeMultipleChoice])
	require.True(t, seen[model.QuestionTypeShortAnswer])
	require.True(t, seen[model.QuestionTypeLongAnswer])
	require.True(t, seen[model.QuestionTypeCoding])
}

func TestSeederLeavesExistingJobsAlone(t *testing.T) {
	ctx := context.Background()
	st := openSeededStore(t)

	require.NoError(t, st.CreateJob(ctx, model.Job{
		ID: "legacy1", Title: "Old Job", Company: "Acme",
		Status: model.JobStatusOpen, Slug: "kept-slug",
	}))

	require.NoError(t, New(st, zap.NewNop()).Run(ctx))

	job, err := st.GetJob(ctx, "legacy1")
	require.NoError(t, err)
	require.Equal(t, "kept-slug", job.Slug)
	require.False(t, job.Archived)

	// non-empty store: baseline must not be inserted on top
	count, err := st.CountJobs(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
