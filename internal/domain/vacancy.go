package domain

import (
	"context"
	"time"
)

// Vacancy status constants
const (
	VacancyStatusDraft     = "DRAFT"
	VacancyStatusActive    = "ACTIVE"
	VacancyStatusClosed    = "CLOSED"
	VacancyStatusCancelled = "CANCELLED"
)

// Employment types
const (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentInternship = "INTERNSHIP"
)

// Vacancy is a job posting owned by one HR manager.
type Vacancy struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         *string   `json:"description,omitempty"`
	Department          string    `json:"department"`
	Location            string    `json:"location"`
	EmploymentType      string    `json:"employment_type"` // FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP
	SalaryMin           int64     `json:"salary_min"`
	SalaryMax           int64     `json:"salary_max"`
	Responsibilities    *string   `json:"responsibilities,omitempty"`
	Status              string    `json:"status"` // DRAFT, ACTIVE, CLOSED, CANCELLED
	ApplicationDeadline time.Time `json:"application_deadline"`
	RequiredEducation   *string   `json:"required_education,omitempty"`
	RequiredExperience  *string   `json:"required_experience,omitempty"`
	NumberOfVacancies   int       `json:"number_of_vacancies"`
	ShiftDetails        *string   `json:"shift_details,omitempty"`
	HrManagerID         int64     `json:"hr_manager_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type VacancyRepository interface {
	Create(ctx context.Context, v *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	ListByStatus(ctx context.Context, status string) ([]Vacancy, error)
	ListAll(ctx context.Context) ([]Vacancy, error)
	Search(ctx context.Context, keyword string) ([]Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
	Delete(ctx context.Context, id int64) error
}

// VacancyInput is the create/update payload after validation.
type VacancyInput struct {
	Title               string    `validate:"required"`
	Description         *string
	Department          string    `validate:"required"`
	Location            string    `validate:"required"`
	EmploymentType      string    `validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	SalaryMin           int64     `validate:"gte=0"`
	SalaryMax           int64     `validate:"gtefield=SalaryMin"`
	Responsibilities    *string
	Status              string    `validate:"required,oneof=DRAFT ACTIVE CLOSED CANCELLED"`
	ApplicationDeadline time.Time `validate:"required"`
	RequiredEducation   *string
	RequiredExperience  *string
	NumberOfVacancies   int       `validate:"gte=1"`
	ShiftDetails        *string
}

type VacancyUsecase interface {
	Create(ctx context.Context, userID int64, in *VacancyInput) (*Vacancy, error)
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	ListActive(ctx context.Context) ([]Vacancy, error)
	ListAll(ctx context.Context) ([]Vacancy, error)
	ListByStatus(ctx context.Context, status string) ([]Vacancy, error)
	Search(ctx context.Context, keyword string) ([]Vacancy, error)
	Update(ctx context.Context, id int64, in *VacancyInput) (*Vacancy, error)
	Delete(ctx context.Context, id int64) error
}
