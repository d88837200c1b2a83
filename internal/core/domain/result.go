package domain

import (
	"errors"
	"time"
)

// Outcome is the pass/fail verdict recorded on a result row.
type Outcome string

const (
	OutcomePass   Outcome = "PASS"
	OutcomeFail   Outcome = "FAIL"
	OutcomeAbsent Outcome = "ABSENT"
)

// Valid reports whether o is one of the recognised outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePass, OutcomeFail, OutcomeAbsent:
		return true
	}
	return false
}

var (
	ErrEmptyBatch     = errors.New("result batch is empty")
	ErrInvalidEntry   = errors.New("invalid result entry")
	ErrClassNotFound  = errors.New("no results for class")
	ErrInvalidOutcome = errors.New("invalid result outcome")
)

// ResultEntry is a single row of a published result sheet. ClassKey groups a
// sheet (year_department_semester, e.g. "FE_CS_I").
type ResultEntry struct {
	ID          string    `json:"id,omitempty"`
	ClassKey    string    `json:"class_key"`
	StudentName string    `json:"student_name"`
	Grade       float64   `json:"grade"`
	Outcome     Outcome   `json:"outcome"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ResultSummary aggregates a class sheet for the teacher dashboard.
type ResultSummary struct {
	ClassKey     string  `json:"class_key"`
	Total        int64   `json:"total"`
	Passed       int64   `json:"passed"`
	Failed       int64   `json:"failed"`
	Absent       int64   `json:"absent"`
	AverageGrade float64 `json:"average_grade"`
}
