package usecase

import (
	"context"
	"strings"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.VacancyRepository
	validate        *validator.Validate
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.VacancyRepository,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		validate:        validate,
	}
}

// ApplyForJob submits an application against an open vacancy. Applications
// to non-ACTIVE vacancies or past the deadline are rejected. The duplicate
// pre-check is advisory; the unique index on (user_id, vacancy_id) decides
// races, and the repo reports the resulting conflict as the same error.
func (u *applicationUsecase) ApplyForJob(ctx context.Context, userID int64, in *domain.ApplyInput) (*domain.Application, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	vacancy, err := u.vacancyRepo.GetByID(ctx, in.VacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy.Status != domain.VacancyStatusActive {
		return nil, apperror.BadRequest("Vacancy is not open for applications")
	}
	if time.Now().After(vacancy.ApplicationDeadline) {
		return nil, apperror.BadRequest("Application deadline has passed")
	}

	exists, err := u.applicationRepo.Exists(ctx, userID, in.VacancyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied for this vacancy")
	}

	now := time.Now()
	app := &domain.Application{
		VacancyID:      in.VacancyID,
		UserID:         userID,
		Status:         domain.ApplicationStatusSubmitted,
		CoverLetter:    in.CoverLetter,
		ResumeFileName: in.ResumeFileName,
		ResumeFilePath: in.ResumeFilePath,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	return u.applicationRepo.GetByUserID(ctx, userID)
}

func (u *applicationUsecase) GetByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	return u.applicationRepo.GetByUserID(ctx, userID)
}

func (u *applicationUsecase) GetByVacancy(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	return u.applicationRepo.GetByVacancyID(ctx, vacancyID)
}

func (u *applicationUsecase) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	status = strings.ToUpper(status)
	if !domain.ValidApplicationStatuses[status] {
		return nil, apperror.BadRequest("Invalid application status: " + status)
	}
	return u.applicationRepo.GetByStatus(ctx, status)
}

func (u *applicationUsecase) GetAll(ctx context.Context) ([]domain.Application, error) {
	return u.applicationRepo.GetAll(ctx)
}

func (u *applicationUsecase) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	return u.applicationRepo.GetByID(ctx, id)
}

func (u *applicationUsecase) HasApplied(ctx context.Context, userID, vacancyID int64) (bool, error) {
	return u.applicationRepo.Exists(ctx, userID, vacancyID)
}

// UpdateStatus moves an application to a new status. REJECTED and SELECTED
// are terminal: once there, the application cannot move again.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	status = strings.ToUpper(status)
	if !domain.ValidApplicationStatuses[status] {
		return nil, apperror.BadRequest("Invalid application status: " + status)
	}

	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.TerminalApplicationStatuses[app.Status] && app.Status != status {
		return nil, apperror.BadRequest("Application is already " + app.Status + " and cannot change status")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

func (u *applicationUsecase) Delete(ctx context.Context, id int64) error {
	return u.applicationRepo.DeleteCascade(ctx, id)
}
