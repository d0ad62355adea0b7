package domain

import (
	"context"
	"time"
)

// Interview status constants
const (
	InterviewStatusScheduled   = "SCHEDULED"
	InterviewStatusCompleted   = "COMPLETED"
	InterviewStatusCancelled   = "CANCELLED"
	InterviewStatusRescheduled = "RESCHEDULED"
)

// Interview types
const (
	InterviewTypePhone    = "PHONE"
	InterviewTypeVideo    = "VIDEO"
	InterviewTypeInPerson = "IN_PERSON"
)

var ValidInterviewStatuses = map[string]bool{
	InterviewStatusScheduled:   true,
	InterviewStatusCompleted:   true,
	InterviewStatusCancelled:   true,
	InterviewStatusRescheduled: true,
}

// Interview is one scheduled evaluation session tied to an application,
// created by an HR manager.
type Interview struct {
	ID              int64     `json:"id"`
	ApplicationID   int64     `json:"application_id"`
	InterviewerName string    `json:"interviewer_name"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Type            string    `json:"type"`   // PHONE, VIDEO, IN_PERSON
	Status          string    `json:"status"` // SCHEDULED, COMPLETED, CANCELLED, RESCHEDULED
	Feedback        *string   `json:"feedback,omitempty"`
	MeetURL         *string   `json:"meet_url,omitempty"`
	HrManagerID     int64     `json:"hr_manager_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName *string `json:"applicant_name,omitempty"`
	VacancyTitle  *string `json:"vacancy_title,omitempty"`
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetAll(ctx context.Context) ([]Interview, error)
	GetByStatus(ctx context.Context, status string) ([]Interview, error)
	GetByApplicationID(ctx context.Context, applicationID int64) ([]Interview, error)
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleInterviewInput is the create payload after validation.
type ScheduleInterviewInput struct {
	ApplicationID   int64     `validate:"required,gt=0"`
	InterviewerName string    `validate:"required"`
	ScheduledAt     time.Time `validate:"required"`
	Type            string    `validate:"required,oneof=PHONE VIDEO IN_PERSON"`
	MeetURL         *string
}

// UpdateInterviewInput mutates schedule, status or feedback.
type UpdateInterviewInput struct {
	InterviewerName *string
	ScheduledAt     *time.Time
	Type            *string
	Status          *string
	Feedback        *string
	MeetURL         *string
}

type InterviewUsecase interface {
	Schedule(ctx context.Context, userID int64, in *ScheduleInterviewInput) (*Interview, error)
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetAll(ctx context.Context) ([]Interview, error)
	GetByStatus(ctx context.Context, status string) ([]Interview, error)
	GetByApplication(ctx context.Context, applicationID int64) ([]Interview, error)
	Update(ctx context.Context, id int64, in *UpdateInterviewInput) (*Interview, error)
	Delete(ctx context.Context, id int64) error
}
