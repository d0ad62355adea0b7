package usecase

import (
	"context"
	"strings"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type hiringUsecase struct {
	hiringRepo      domain.HiringRepository
	applicationRepo domain.ApplicationRepository
	hrManagerRepo   domain.HrManagerRepository
	validate        *validator.Validate
}

func NewHiringUsecase(
	hiringRepo domain.HiringRepository,
	applicationRepo domain.ApplicationRepository,
	hrManagerRepo domain.HrManagerRepository,
	validate *validator.Validate,
) domain.HiringUsecase {
	return &hiringUsecase{
		hiringRepo:      hiringRepo,
		applicationRepo: applicationRepo,
		hrManagerRepo:   hrManagerRepo,
		validate:        validate,
	}
}

// Create records a hiring decision for an application and moves the
// application to the matching terminal status when the decision is
// SELECTED or REJECTED. A decision that would pull the application out of
// a terminal status it already reached is rejected, same as a direct
// status update. Multiple decision rows per application may exist;
// readers take the newest one.
func (u *hiringUsecase) Create(ctx context.Context, userID int64, in *domain.HiringInput) (*domain.Hiring, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	app, err := u.applicationRepo.GetByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}

	targetStatus := ""
	switch in.Decision {
	case domain.DecisionSelected:
		targetStatus = domain.ApplicationStatusSelected
	case domain.DecisionRejected:
		targetStatus = domain.ApplicationStatusRejected
	}
	if targetStatus != "" && domain.TerminalApplicationStatuses[app.Status] && app.Status != targetStatus {
		return nil, apperror.BadRequest("Application is already " + app.Status + " and cannot change status")
	}

	hm, err := u.hrManagerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	h := &domain.Hiring{
		ApplicationID:   in.ApplicationID,
		VacancyID:       app.VacancyID,
		InterviewerName: in.InterviewerName,
		Decision:        in.Decision,
		SalaryOffered:   in.SalaryOffered,
		StartDate:       in.StartDate,
		HrManagerID:     hm.ID,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.hiringRepo.Create(ctx, h); err != nil {
		return nil, err
	}

	if targetStatus != "" && app.Status != targetStatus {
		if err := u.applicationRepo.UpdateStatus(ctx, app.ID, targetStatus); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (u *hiringUsecase) GetByID(ctx context.Context, id int64) (*domain.Hiring, error) {
	return u.hiringRepo.GetByID(ctx, id)
}

func (u *hiringUsecase) GetAll(ctx context.Context) ([]domain.Hiring, error) {
	return u.hiringRepo.GetAll(ctx)
}

func (u *hiringUsecase) GetByDecision(ctx context.Context, decision string) ([]domain.Hiring, error) {
	decision = strings.ToUpper(decision)
	if !domain.ValidDecisions[decision] {
		return nil, apperror.BadRequest("Invalid hiring decision: " + decision)
	}
	return u.hiringRepo.GetByDecision(ctx, decision)
}

// GetByApplication returns the authoritative (most recent) decision.
func (u *hiringUsecase) GetByApplication(ctx context.Context, applicationID int64) (*domain.Hiring, error) {
	return u.hiringRepo.GetLatestByApplicationID(ctx, applicationID)
}

func (u *hiringUsecase) Update(ctx context.Context, id int64, in *domain.HiringInput) (*domain.Hiring, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	h, err := u.hiringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	h.InterviewerName = in.InterviewerName
	h.Decision = in.Decision
	h.SalaryOffered = in.SalaryOffered
	h.StartDate = in.StartDate
	h.Notes = in.Notes
	h.UpdatedAt = time.Now()

	if err := u.hiringRepo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (u *hiringUsecase) Delete(ctx context.Context, id int64) error {
	return u.hiringRepo.Delete(ctx, id)
}
