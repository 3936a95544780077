package model

import "time"

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeShortAnswer    QuestionType = "short-answer"
	QuestionTypeLongAnswer     QuestionType = "long-answer"
	QuestionTypeCoding         QuestionType = "coding"
)

type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	TimeLimit     int          `json:"timeLimit,omitempty"`
}

// Assessment is linked one-to-one with a job; creation is rejected when the
// job already has one.
type Assessment struct {
	ID           string     `json:"id"`
	JobID        string     `json:"jobId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration"`
	PassingScore int        `json:"passingScore"`
	Questions    []Question `json:"questions"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CreateAssessmentRequest struct {
	JobID        string     `json:"jobId" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration" binding:"required,gt=0"`
	PassingScore int        `json:"passingScore" binding:"min=0,max=100"`
	Questions    []Question `json:"questions"`
}

// AssessmentPatch is a partial update; nil fields are left untouched. The
// server refreshes updatedAt on every applied patch.
type AssessmentPatch struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	Duration     *int        `json:"duration,omitempty"`
	PassingScore *int        `json:"passingScore,omitempty"`
	Questions    *[]Question `json:"questions,omitempty"`
}
