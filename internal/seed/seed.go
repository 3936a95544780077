package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// Seeder ensures a non-empty baseline dataset exists. It checks counts before
// acting, so invoking it on every start never duplicates baseline records.
type Seeder struct {
	store *store.Store
	log   *zap.Logger
}

func New(st *store.Store, log *zap.Logger) *Seeder {
	return &Seeder{store: st, log: log}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.ensureJobs(ctx); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	if err := s.ensureAssessments(ctx); err != nil {
		return fmt.Errorf("seed assessments: %w", err)
	}
	return nil
}

// ensureJobs inserts the baseline set when the collection is empty, and
// otherwise backfills order, archived and slug for any job missing them.
func (s *Seeder) ensureJobs(ctx context.Context) error {
	count, err := s.store.CountJobs(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		jobs := baselineJobs(time.Now())
		if err := s.store.BulkInsertJobs(ctx, jobs); err != nil {
			return err
		}
		s.log.Info("seed: baseline jobs inserted", zap.Int("count", len(jobs)))
		return nil
	}

	recs, err := s.store.ListJobRecords(ctx)
	if err != nil {
		return err
	}

	backfilled := 0
	for i, rec := range recs {
		var patch model.JobPatch

		if !rec.HasOrder {
			order := i
			patch.Order = &order
		}
		if !rec.HasArchived {
			archived := false
			patch.Archived = &archived
		}
		if !rec.HasSlug {
			slug := pkg.JobSlug(rec.Job.Title, rec.Job.ID)
			patch.Slug = &slug
		}

		if patch.Order != nil || patch.Archived != nil || patch.Slug != nil {
			if _, err := s.store.UpdateJob(ctx, rec.Job.ID, patch); err != nil {
				return fmt.Errorf("backfill job %s: %w", rec.Job.ID, err)
			}
			backfilled++
		}
	}
	if backfilled > 0 {
		s.log.Info("seed: jobs backfilled", zap.Int("count", backfilled))
	}
	return nil
}

func (s *Seeder) ensureAssessments(ctx context.Context) error {
	count, err := s.store.CountAssessments(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	assessments := baselineAssessments(time.Now())
	if err := s.store.BulkInsertAssessments(ctx, assessments); err != nil {
		return err
	}
	s.log.Info("seed: baseline assessments inserted", zap.Int("count", len(assessments)))
	return nil
}

func baselineJobs(now time.Time) []model.Job {
	const day = 24 * time.Hour

	specs := []struct {
		title        string
		company      string
		location     string
		typ          model.JobType
		salary       string
		description  string
		requirements []string
		status       model.JobStatus
	}{
		{
			title: "Senior React Developer", company: "TechCorp", location: "Remote",
			typ: model.JobTypeFullTime, salary: "$120k - $160k",
			description:  "We are looking for an experienced React developer to join our team and build innovative web applications.",
			requirements: []string{"5+ years React experience", "TypeScript", "State management", "Testing"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Full Stack Engineer", company: "StartupXYZ", location: "San Francisco, CA",
			typ: model.JobTypeFullTime, salary: "$140k - $180k",
			description:  "Join our fast-growing startup and build scalable web applications from the ground up.",
			requirements: []string{"React", "Node.js", "PostgreSQL", "AWS"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Frontend Developer", company: "DesignHub", location: "New York, NY",
			typ: model.JobTypeContract, salary: "$80/hour",
			description:  "Create beautiful, responsive user interfaces for our diverse client portfolio.",
			requirements: []string{"React", "CSS/SCSS", "Figma", "Responsive design"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Backend Engineer", company: "DataCorp", location: "Austin, TX",
			typ: model.JobTypeFullTime, salary: "$130k - $150k",
			description:  "Build robust and scalable backend systems for enterprise clients.",
			requirements: []string{"Node.js", "Python", "PostgreSQL", "Microservices"},
			status:       model.JobStatusOpen,
		},
		{
			title: "DevOps Engineer", company: "CloudTech", location: "Seattle, WA",
			typ: model.JobTypeFullTime, salary: "$140k - $170k",
			description:  "Manage our cloud infrastructure and automate deployment pipelines.",
			requirements: []string{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD"},
			status:       model.JobStatusOpen,
		},
		{
			title: "UI/UX Designer", company: "Creative Labs", location: "Remote",
			typ: model.JobTypeFullTime, salary: "$100k - $130k",
			description:  "Design intuitive and engaging user experiences for web and mobile applications.",
			requirements: []string{"Figma", "Adobe XD", "User research", "Prototyping"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Mobile Developer", company: "AppWorks", location: "Los Angeles, CA",
			typ: model.JobTypeFullTime, salary: "$125k - $155k",
			description:  "Build native mobile applications for iOS and Android platforms.",
			requirements: []string{"React Native", "Swift", "Kotlin", "Mobile UI/UX"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Data Scientist", company: "Analytics Pro", location: "Boston, MA",
			typ: model.JobTypeFullTime, salary: "$130k - $165k",
			description:  "Analyze complex datasets and build machine learning models for business insights.",
			requirements: []string{"Python", "SQL", "Machine Learning", "Statistics"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Technical Writer", company: "DocuTech", location: "Remote",
			typ: model.JobTypeContract, salary: "$70/hour",
			description:  "Create clear and comprehensive technical documentation for developers.",
			requirements: []string{"Technical writing", "API documentation", "Markdown", "Git"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Systems Architect", company: "Enterprise Solutions", location: "Atlanta, GA",
			typ: model.JobTypeFullTime, salary: "$155k - $185k",
			description:  "Design and architect large-scale distributed systems.",
			requirements: []string{"System design", "Microservices", "Cloud architecture", "Scalability"},
			status:       model.JobStatusClosed,
		},
		{
			title: "Frontend Intern", company: "StartupHub", location: "Remote",
			typ: model.JobTypePartTime, salary: "$25/hour",
			description:  "Learn and contribute to frontend development projects.",
			requirements: []string{"HTML", "CSS", "JavaScript", "React basics"},
			status:       model.JobStatusOpen,
		},
		{
			title: "Business Analyst", company: "BizTech", location: "Philadelphia, PA",
			typ: model.JobTypeFullTime, salary: "$90k - $120k",
			description:  "Bridge the gap between business needs and technical solutions.",
			requirements: []string{"Requirements gathering", "SQL", "Data analysis", "Documentation"},
			status:       model.JobStatusClosed,
		},
	}

	jobs := make([]model.Job, 0, len(specs))
	for i, spec := range specs {
		id := fmt.Sprintf("%d", i+1)
		jobs = append(jobs, model.Job{
			ID:           id,
			Title:        spec.title,
			Company:      spec.company,
			Location:     spec.location,
			Type:         spec.typ,
			Salary:       spec.salary,
			Description:  spec.description,
			Requirements: spec.requirements,
			PostedAt:     now.Add(-time.Duration(i) * day),
			Status:       spec.status,
			Order:        i,
			Archived:     false,
			Slug:         pkg.GenerateSlug(spec.title) + "-" + id,
		})
	}
	return jobs
}

func baselineAssessments(now time.Time) []model.Assessment {
	return []model.Assessment{
		{
			ID:           "1",
			JobID:        "1",
			Title:        "React Developer Technical Assessment",
			Description:  "Test your React, TypeScript, and state management skills",
			Duration:     90,
			PassingScore: 70,
			Questions: []model.Question{
				{
					ID:   "q1",
					Text: "What is the purpose of useEffect hook in React?",
					Type: model.QuestionTypeMultipleChoice,
					Options: []string{
						"To manage component state",
						"To handle side effects in functional components",
						"To create custom hooks",
						"To optimize performance",
					},
					CorrectAnswer: "To handle side effects in functional components",
					TimeLimit:     5,
				},
				{
					ID:            "q2",
					Text:          "Which hook would you use to preserve a value between renders without triggering a re-render?",
					Type:          model.QuestionTypeMultipleChoice,
					Options:       []string{"useState", "useRef", "useMemo", "useCallback"},
					CorrectAnswer: "useRef",
					TimeLimit:     5,
				},
				{
					ID:        "q3",
					Text:      "Explain the difference between useMemo and useCallback.",
					Type:      model.QuestionTypeShortAnswer,
					TimeLimit: 8,
				},
				{
					ID:        "q4",
					Text:      "Explain prop drilling and how Context API helps solve it.",
					Type:      model.QuestionTypeLongAnswer,
					TimeLimit: 12,
				},
				{
					ID:        "q5",
					Text:      "Write a custom React hook that fetches data from an API and handles loading and error states.",
					Type:      model.QuestionTypeCoding,
					TimeLimit: 15,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "2",
			JobID:        "2",
			Title:        "Backend Developer Technical Assessment",
			Description:  "Test your Node.js, databases, and API development skills",
			Duration:     90,
			PassingScore: 70,
			Questions: []model.Question{
				{
					ID:   "q1",
					Text: "What is the difference between SQL and NoSQL databases?",
					Type: model.QuestionTypeMultipleChoice,
					Options: []string{
						"SQL is faster than NoSQL",
						"SQL uses structured schema, NoSQL is schema-less",
						"NoSQL cannot handle relationships",
						"SQL is only for small databases",
					},
					CorrectAnswer: "SQL uses structured schema, NoSQL is schema-less",
					TimeLimit:     5,
				},
				{
					ID:        "q2",
					Text:      "What is the difference between PUT and PATCH HTTP methods?",
					Type:      model.QuestionTypeShortAnswer,
					TimeLimit: 8,
				},
				{
					ID:        "q3",
					Text:      "Describe how JWT authentication works and its advantages.",
					Type:      model.QuestionTypeLongAnswer,
					TimeLimit: 12,
				},
				{
					ID:        "q4",
					Text:      "Create a RESTful API endpoint for user registration with input validation and password hashing.",
					Type:      model.QuestionTypeCoding,
					TimeLimit: 15,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
