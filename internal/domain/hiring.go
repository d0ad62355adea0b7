package domain

import (
	"context"
	"time"
)

// Hiring decisions
const (
	DecisionSelected = "SELECTED"
	DecisionRejected = "REJECTED"
	DecisionHold     = "HOLD"
)

var ValidDecisions = map[string]bool{
	DecisionSelected: true,
	DecisionRejected: true,
	DecisionHold:     true,
}

// Hiring is a decision record for an application. Several rows may exist
// per application; readers treat the most recently created one as
// authoritative.
type Hiring struct {
	ID              int64     `json:"id"`
	ApplicationID   int64     `json:"application_id"`
	VacancyID       int64     `json:"vacancy_id"`
	InterviewerName string    `json:"interviewer_name"`
	Decision        string    `json:"decision"` // SELECTED, REJECTED, HOLD
	SalaryOffered   int64     `json:"salary_offered"`
	StartDate       time.Time `json:"start_date"`
	HrManagerID     int64     `json:"hr_manager_id"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	VacancyTitle   *string `json:"vacancy_title,omitempty"`
	HrManagerName  *string `json:"hr_manager_name,omitempty"`
}

type HiringRepository interface {
	Create(ctx context.Context, h *Hiring) error
	GetByID(ctx context.Context, id int64) (*Hiring, error)
	GetAll(ctx context.Context) ([]Hiring, error)
	GetByDecision(ctx context.Context, decision string) ([]Hiring, error)
	GetLatestByApplicationID(ctx context.Context, applicationID int64) (*Hiring, error)
	Update(ctx context.Context, h *Hiring) error
	Delete(ctx context.Context, id int64) error
}

// HiringInput is the create/update payload after validation.
type HiringInput struct {
	ApplicationID   int64     `validate:"required,gt=0"`
	InterviewerName string    `validate:"required"`
	Decision        string    `validate:"required,oneof=SELECTED REJECTED HOLD"`
	SalaryOffered   int64     `validate:"gte=0"`
	StartDate       time.Time `validate:"required"`
	Notes           *string
}

type HiringUsecase interface {
	Create(ctx context.Context, userID int64, in *HiringInput) (*Hiring, error)
	GetByID(ctx context.Context, id int64) (*Hiring, error)
	GetAll(ctx context.Context) ([]Hiring, error)
	GetByDecision(ctx context.Context, decision string) ([]Hiring, error)
	GetByApplication(ctx context.Context, applicationID int64) (*Hiring, error)
	Update(ctx context.Context, id int64, in *HiringInput) (*Hiring, error)
	Delete(ctx context.Context, id int64) error
}
