package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

type assessmentsActionKind int

const (
	assessmentsActionNone assessmentsActionKind = iota
	assessmentsActionFetch
	assessmentsActionUpdate
	assessmentsActionDelete
)

type assessmentsAction struct {
	kind  assessmentsActionKind
	id    string
	patch model.AssessmentPatch
}

// AssessmentsStore caches the assessment list.
type AssessmentsStore struct {
	api *apiclient.Client
	ui  *UIStore
	log *zap.Logger

	mu          sync.Mutex
	assessments []model.Assessment
	loading     bool
	lastError   string
	last        assessmentsAction
}

func NewAssessmentsStore(api *apiclient.Client, ui *UIStore, log *zap.Logger) *AssessmentsStore {
	return &AssessmentsStore{
		api:         api,
		ui:          ui,
		log:         log,
		assessments: make([]model.Assessment, 0),
	}
}

// Fetch replaces the snapshot wholesale. Failures are absorbed into store
// state and the banner.
func (s *AssessmentsStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.last = assessmentsAction{kind: assessmentsActionFetch}
	s.mu.Unlock()
	s.ui.SetLoading(true)

	assessments, err := s.api.ListAssessments(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.assessments = assessments
		s.lastError = ""
	}
	s.mu.Unlock()
	s.ui.SetLoading(false)

	if err != nil {
		s.log.Warn("assessments_store: fetch failed", zap.Error(err))
		s.ui.SetError(err.Error())
	}
}

// ByJobID looks up the assessment linked to a job. A job without one yields
// nil with no error; builders use that to offer creation instead. Not
// recorded as a retry target.
func (s *AssessmentsStore) ByJobID(ctx context.Context, jobID string) (*model.Assessment, error) {
	a, err := s.api.GetAssessmentByJob(ctx, jobID)
	if apiclient.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	return &a, nil
}

// Create builds a new assessment for a job. The server rejects a second
// assessment for the same job. Creations are not recorded as retry targets.
func (s *AssessmentsStore) Create(ctx context.Context, req model.CreateAssessmentRequest) (model.Assessment, error) {
	a, err := s.api.CreateAssessment(ctx, req)
	if err != nil {
		s.recordError(err)
		return model.Assessment{}, err
	}

	s.mu.Lock()
	s.assessments = append(s.assessments, a)
	s.lastError = ""
	s.mu.Unlock()
	return a, nil
}

// Update patches an assessment and merges the server's record into the
// snapshot.
func (s *AssessmentsStore) Update(ctx context.Context, id string, patch model.AssessmentPatch) (model.Assessment, error) {
	s.setLast(assessmentsAction{kind: assessmentsActionUpdate, id: id, patch: patch})

	a, err := s.api.UpdateAssessment(ctx, id, patch)
	if err != nil {
		s.recordError(err)
		return model.Assessment{}, err
	}

	s.mu.Lock()
	merged := false
	for i := range s.assessments {
		if s.assessments[i].ID == a.ID {
			s.assessments[i] = a
			merged = true
			break
		}
	}
	if !merged {
		s.assessments = append(s.assessments, a)
	}
	s.lastError = ""
	s.mu.Unlock()
	return a, nil
}

// Delete removes an assessment from the server and the snapshot.
func (s *AssessmentsStore) Delete(ctx context.Context, id string) error {
	s.setLast(assessmentsAction{kind: assessmentsActionDelete, id: id})

	if err := s.api.DeleteAssessment(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	for i := range s.assessments {
		if s.assessments[i].ID == id {
			s.assessments = append(s.assessments[:i], s.assessments[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

// Retry replays the store's last recorded action.
func (s *AssessmentsStore) Retry(ctx context.Context) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	switch last.kind {
	case assessmentsActionFetch:
		s.Fetch(ctx)
	case assessmentsActionUpdate:
		_, _ = s.Update(ctx, last.id, last.patch)
	case assessmentsActionDelete:
		_ = s.Delete(ctx, last.id)
	}
}

// Assessments returns a copy of the snapshot.
func (s *AssessmentsStore) Assessments() []model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Assessment(nil), s.assessments...)
}

func (s *AssessmentsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AssessmentsStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Reset clears the snapshot and the recorded action.
func (s *AssessmentsStore) Reset() {
	s.mu.Lock()
	s.assessments = make([]model.Assessment, 0)
	s.loading = false
	s.lastError = ""
	s.last = assessmentsAction{}
	s.mu.Unlock()
}

func (s *AssessmentsStore) setLast(a assessmentsAction) {
	s.mu.Lock()
	s.last = a
	s.mu.Unlock()
}

func (s *AssessmentsStore) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	s.ui.SetError(err.Error())
}
