package usecase

import (
	"context"
	"strings"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type vacancyUsecase struct {
	vacancyRepo   domain.VacancyRepository
	hrManagerRepo domain.HrManagerRepository
	validate      *validator.Validate
}

func NewVacancyUsecase(
	vacancyRepo domain.VacancyRepository,
	hrManagerRepo domain.HrManagerRepository,
	validate *validator.Validate,
) domain.VacancyUsecase {
	return &vacancyUsecase{
		vacancyRepo:   vacancyRepo,
		hrManagerRepo: hrManagerRepo,
		validate:      validate,
	}
}

// Create posts a vacancy owned by the calling HR manager.
func (u *vacancyUsecase) Create(ctx context.Context, userID int64, in *domain.VacancyInput) (*domain.Vacancy, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	hm, err := u.hrManagerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	v := &domain.Vacancy{
		Title:               in.Title,
		Description:         in.Description,
		Department:          in.Department,
		Location:            in.Location,
		EmploymentType:      in.EmploymentType,
		SalaryMin:           in.SalaryMin,
		SalaryMax:           in.SalaryMax,
		Responsibilities:    in.Responsibilities,
		Status:              in.Status,
		ApplicationDeadline: in.ApplicationDeadline,
		RequiredEducation:   in.RequiredEducation,
		RequiredExperience:  in.RequiredExperience,
		NumberOfVacancies:   in.NumberOfVacancies,
		ShiftDetails:        in.ShiftDetails,
		HrManagerID:         hm.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := u.vacancyRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *vacancyUsecase) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	return u.vacancyRepo.GetByID(ctx, id)
}

// ListActive backs the public vacancy listing.
func (u *vacancyUsecase) ListActive(ctx context.Context) ([]domain.Vacancy, error) {
	return u.vacancyRepo.ListByStatus(ctx, domain.VacancyStatusActive)
}

func (u *vacancyUsecase) ListAll(ctx context.Context) ([]domain.Vacancy, error) {
	return u.vacancyRepo.ListAll(ctx)
}

func (u *vacancyUsecase) ListByStatus(ctx context.Context, status string) ([]domain.Vacancy, error) {
	status = strings.ToUpper(status)
	switch status {
	case domain.VacancyStatusDraft, domain.VacancyStatusActive,
		domain.VacancyStatusClosed, domain.VacancyStatusCancelled:
	default:
		return nil, apperror.BadRequest("Invalid vacancy status: " + status)
	}
	return u.vacancyRepo.ListByStatus(ctx, status)
}

func (u *vacancyUsecase) Search(ctx context.Context, keyword string) ([]domain.Vacancy, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperror.BadRequest("Search keyword is required")
	}
	return u.vacancyRepo.Search(ctx, keyword)
}

func (u *vacancyUsecase) Update(ctx context.Context, id int64, in *domain.VacancyInput) (*domain.Vacancy, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	v, err := u.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Title = in.Title
	v.Description = in.Description
	v.Department = in.Department
	v.Location = in.Location
	v.EmploymentType = in.EmploymentType
	v.SalaryMin = in.SalaryMin
	v.SalaryMax = in.SalaryMax
	v.Responsibilities = in.Responsibilities
	v.Status = in.Status
	v.ApplicationDeadline = in.ApplicationDeadline
	v.RequiredEducation = in.RequiredEducation
	v.RequiredExperience = in.RequiredExperience
	v.NumberOfVacancies = in.NumberOfVacancies
	v.ShiftDetails = in.ShiftDetails
	v.UpdatedAt = time.Now()

	if err := u.vacancyRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *vacancyUsecase) Delete(ctx context.Context, id int64) error {
	return u.vacancyRepo.Delete(ctx, id)
}
