package model

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

type Application struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId"`
	CandidateName string            `json:"candidateName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Resume        string            `json:"resume"`
	CoverLetter   string            `json:"coverLetter"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"appliedAt"`
}

// SubmitApplicationRequest carries the applicant-supplied fields; the server
// assigns id, status=pending and appliedAt.
type SubmitApplicationRequest struct {
	JobID         string `json:"jobId" binding:"required"`
	CandidateName string `json:"candidateName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Resume        string `json:"resume"`
	CoverLetter   string `json:"coverLetter"`
}
