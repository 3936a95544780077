package sim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg/model"
	"github.com/vivo1806/Talent-Flow/pkg/response"
)

// Config tunes the simulated network behavior.
type Config struct {
	// Latency is the fixed artificial delay applied to every call.
	Latency time.Duration
	// FailureRate is the probability in [0,1] that a call fails with a
	// simulated transport error before touching any state.
	FailureRate float64
	// Seed fixes the failure-injection sequence; 0 uses the clock.
	Seed int64
	// CurrentUser is recorded as the author of status changes.
	CurrentUser string
}

// Simulator serves the HTTP-shaped API. Jobs, applications and assessments
// are backed by the persisted store; candidates live in an in-memory
// collection rebuilt from the fixture on every start, and the status-history
// map lives here for the simulator's lifetime.
type Simulator struct {
	store *store.Store
	log   *zap.Logger
	cfg   Config

	mu         sync.Mutex
	rng        *rand.Rand
	candidates []model.Candidate
	history    map[string][]model.StatusChange
}

func New(st *store.Store, candidates []model.Candidate, cfg Config, log *zap.Logger) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.CurrentUser == "" {
		cfg.CurrentUser = "John Doe"
	}
	s := &Simulator{
		store:   st,
		log:     log,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		history: make(map[string][]model.StatusChange),
	}
	s.ResetCandidates(candidates)
	return s
}

// ResetCandidates replaces the in-memory candidate collection and drops all
// accumulated status history.
func (s *Simulator) ResetCandidates(candidates []model.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append([]model.Candidate(nil), candidates...)
	s.history = make(map[string][]model.StatusChange)
}

// intercept applies the artificial latency and rolls for a random failure.
// It runs before any business logic, so a simulated failure never leaves
// partial state. Returns true when the request was failed.
func (s *Simulator) intercept(c *gin.Context, message string) bool {
	if s.cfg.Latency > 0 {
		time.Sleep(s.cfg.Latency)
	}

	s.mu.Lock()
	fail := s.rng.Float64() < s.cfg.FailureRate
	s.mu.Unlock()

	if fail {
		s.log.Debug("sim: injected failure",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		response.InternalError(c, message)
		return true
	}
	return false
}

// candidateIndex returns the position of a candidate in the collection, or
// -1. Callers must hold s.mu.
func (s *Simulator) candidateIndex(id string) int {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return i
		}
	}
	return -1
}

// appendStatusChange records a transition in the history map. Callers must
// hold s.mu.
func (s *Simulator) appendStatusChange(candidateID string, from, to model.CandidateStatus) {
	change := model.StatusChange{
		To:        to,
		Timestamp: time.Now(),
		ChangedBy: s.cfg.CurrentUser,
	}
	if from != "" {
		prev := from
		change.From = &prev
	}
	s.history[candidateID] = append(s.history[candidateID], change)
}
