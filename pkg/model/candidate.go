package model

import "time"

type CandidateStatus string

const (
	CandidateStatusNew       CandidateStatus = "new"
	CandidateStatusScreening CandidateStatus = "screening"
	CandidateStatusInterview CandidateStatus = "interview"
	CandidateStatusOffer     CandidateStatus = "offer"
	CandidateStatusRejected  CandidateStatus = "rejected"
)

type Candidate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Position       string          `json:"position"`
	Experience     int             `json:"experience"`
	Skills         []string        `json:"skills"`
	Resume         string          `json:"resume"`
	Status         CandidateStatus `json:"status"`
	AppliedAt      time.Time       `json:"appliedAt"`
	Location       string          `json:"location"`
	ExpectedSalary string          `json:"expectedSalary"`
	Notes          []Note          `json:"notes,omitempty"`
}

// Note is immutable once created and owned by its candidate. Text may contain
// "@First Last" mention tokens; Mentions holds the resolved display names.
type Note struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Text        string    `json:"text"`
	Mentions    []string  `json:"mentions"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatusChange records one transition of a candidate's status. From is nil for
// the first recorded transition of a candidate with no prior status.
type StatusChange struct {
	From      *CandidateStatus `json:"from"`
	To        CandidateStatus  `json:"to"`
	Timestamp time.Time        `json:"timestamp"`
	ChangedBy string           `json:"changedBy"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type CandidatePage struct {
	Data       []Candidate `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type UpdateCandidateStatusRequest struct {
	Status CandidateStatus `json:"status" binding:"required,oneof=new screening interview offer rejected"`
}
