package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/pkg/model"
)

type candidatesActionKind int

const (
	candidatesActionNone candidatesActionKind = iota
	candidatesActionFetch
	candidatesActionUpdateStatus
	candidatesActionDelete
)

type candidatesAction struct {
	kind   candidatesActionKind
	page   int
	id     string
	status model.CandidateStatus
}

// CandidatesStore caches one server page of candidates. Search and status
// filtering run server-side; a fetch replay uses the filter values current at
// replay time, not those captured when the action first ran.
type CandidatesStore struct {
	api         *apiclient.Client
	ui          *UIStore
	log         *zap.Logger
	currentUser string
	pageSize    int

	mu         sync.Mutex
	candidates []model.Candidate
	pagination model.Pagination
	loading    bool
	lastError  string
	search     string
	status     string
	last       candidatesAction
}

func NewCandidatesStore(api *apiclient.Client, ui *UIStore, currentUser string, pageSize int, log *zap.Logger) *CandidatesStore {
	if pageSize < 1 {
		pageSize = 50
	}
	if currentUser == "" {
		currentUser = "John Doe"
	}
	return &CandidatesStore{
		api:         api,
		ui:          ui,
		log:         log,
		currentUser: currentUser,
		pageSize:    pageSize,
		candidates:  make([]model.Candidate, 0),
		status:      "all",
	}
}

// SetSearch and SetStatusFilter change the server-side query inputs used by
// the next Fetch.
func (s *CandidatesStore) SetSearch(search string) {
	s.mu.Lock()
	s.search = search
	s.mu.Unlock()
}

func (s *CandidatesStore) SetStatusFilter(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Fetch loads one page using the current search/status filters. Failures are
// absorbed into store state and the banner; the previous page is kept.
func (s *CandidatesStore) Fetch(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.loading = true
	s.last = candidatesAction{kind: candidatesActionFetch, page: page}
	query := apiclient.CandidateQuery{
		Search: s.search,
		Status: s.status,
		Page:   page,
		Limit:  s.pageSize,
	}
	s.mu.Unlock()
	s.ui.SetLoading(true)

	result, err := s.api.ListCandidates(ctx, query)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.candidates = result.Data
		s.pagination = result.Pagination
		s.lastError = ""
	}
	s.mu.Unlock()
	s.ui.SetLoading(false)

	if err != nil {
		s.log.Warn("candidates_store: fetch failed", zap.Error(err))
		s.ui.SetError(err.Error())
	}
}

// UpdateStatus moves a candidate through the pipeline and merges the server's
// record into the current page.
func (s *CandidatesStore) UpdateStatus(ctx context.Context, id string, status model.CandidateStatus) (model.Candidate, error) {
	s.setLast(candidatesAction{kind: candidatesActionUpdateStatus, id: id, status: status})

	cand, err := s.api.UpdateCandidateStatus(ctx, id, status)
	if err != nil {
		s.recordError(err)
		return model.Candidate{}, err
	}

	s.mu.Lock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates[i] = cand
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return cand, nil
}

// Delete removes a candidate from the server and the current page.
func (s *CandidatesStore) Delete(ctx context.Context, id string) error {
	s.setLast(candidatesAction{kind: candidatesActionDelete, id: id})

	if err := s.api.DeleteCandidate(ctx, id); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

// AddNote builds and submits a note authored by the current user. Note
// creation is not recorded as a retry target.
func (s *CandidatesStore) AddNote(ctx context.Context, candidateID, text string, mentions []string) (model.Note, error) {
	note := model.Note{
		ID:          uuid.New().String(),
		CandidateID: candidateID,
		Text:        text,
		Mentions:    mentions,
		CreatedBy:   s.currentUser,
		CreatedAt:   time.Now(),
	}

	created, err := s.api.AddCandidateNote(ctx, candidateID, note)
	if err != nil {
		s.recordError(err)
		return model.Note{}, err
	}

	s.mu.Lock()
	for i := range s.candidates {
		if s.candidates[i].ID == candidateID {
			s.candidates[i].Notes = append(s.candidates[i].Notes, created)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return created, nil
}

// History fetches the accumulated status changes for one candidate. Not
// recorded as a retry target.
func (s *CandidatesStore) History(ctx context.Context, id string) ([]model.StatusChange, error) {
	history, err := s.api.CandidateHistory(ctx, id)
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	return history, nil
}

// Retry replays the store's last recorded action.
func (s *CandidatesStore) Retry(ctx context.Context) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	switch last.kind {
	case candidatesActionFetch:
		s.Fetch(ctx, last.page)
	case candidatesActionUpdateStatus:
		_, _ = s.UpdateStatus(ctx, last.id, last.status)
	case candidatesActionDelete:
		_ = s.Delete(ctx, last.id)
	}
}

// Candidates returns a copy of the current page.
func (s *CandidatesStore) Candidates() []model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Candidate(nil), s.candidates...)
}

func (s *CandidatesStore) Pagination() model.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

func (s *CandidatesStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CandidatesStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Reset clears the page, filters and the recorded action.
func (s *CandidatesStore) Reset() {
	s.mu.Lock()
	s.candidates = make([]model.Candidate, 0)
	s.pagination = model.Pagination{}
	s.loading = false
	s.lastError = ""
	s.search = ""
	s.status = "all"
	s.last = candidatesAction{}
	s.mu.Unlock()
}

func (s *CandidatesStore) setLast(a candidatesAction) {
	s.mu.Lock()
	s.last = a
	s.mu.Unlock()
}

func (s *CandidatesStore) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	s.ui.SetError(err.Error())
}
