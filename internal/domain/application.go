package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusSubmitted   = "SUBMITTED"
	ApplicationStatusUnderReview = "UNDER_REVIEW"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusInterviewed = "INTERVIEWED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusSelected    = "SELECTED"
)

// ValidApplicationStatuses lists every legal application status.
var ValidApplicationStatuses = map[string]bool{
	ApplicationStatusSubmitted:   true,
	ApplicationStatusUnderReview: true,
	ApplicationStatusShortlisted: true,
	ApplicationStatusInterviewed: true,
	ApplicationStatusRejected:    true,
	ApplicationStatusSelected:    true,
}

// TerminalApplicationStatuses are states an application cannot leave.
var TerminalApplicationStatuses = map[string]bool{
	ApplicationStatusRejected: true,
	ApplicationStatusSelected: true,
}

// Application links one User to one Vacancy. UserID and VacancyID are
// immutable after creation; at most one row exists per (user, vacancy).
type Application struct {
	ID             int64     `json:"id"`
	VacancyID      int64     `json:"vacancy_id"`
	UserID         int64     `json:"user_id"`
	Status         string    `json:"status"`
	CoverLetter    *string   `json:"cover_letter,omitempty"`
	ResumeFileName *string   `json:"resume_file_name,omitempty"`
	ResumeFilePath *string   `json:"resume_file_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	VacancyTitle   *string `json:"vacancy_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]Application, error)
	GetByVacancyID(ctx context.Context, vacancyID int64) ([]Application, error)
	GetByStatus(ctx context.Context, status string) ([]Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	Exists(ctx context.Context, userID, vacancyID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	DeleteCascade(ctx context.Context, id int64) error
}

// ApplyInput is the apply payload after validation.
type ApplyInput struct {
	VacancyID      int64 `validate:"required,gt=0"`
	CoverLetter    *string
	ResumeFileName *string
	ResumeFilePath *string
}

type ApplicationUsecase interface {
	ApplyForJob(ctx context.Context, userID int64, in *ApplyInput) (*Application, error)
	GetMyApplications(ctx context.Context, userID int64) ([]Application, error)
	GetByUser(ctx context.Context, userID int64) ([]Application, error)
	GetByVacancy(ctx context.Context, vacancyID int64) ([]Application, error)
	GetByStatus(ctx context.Context, status string) ([]Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	HasApplied(ctx context.Context, userID, vacancyID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
	Delete(ctx context.Context, id int64) error
}
