package usecase

import (
	"context"
	"strings"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	applicationRepo domain.ApplicationRepository
	hrManagerRepo   domain.HrManagerRepository
	validate        *validator.Validate
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	applicationRepo domain.ApplicationRepository,
	hrManagerRepo domain.HrManagerRepository,
	validate *validator.Validate,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
		hrManagerRepo:   hrManagerRepo,
		validate:        validate,
	}
}

// Schedule creates an interview for an existing application. Overlapping
// interviews for the same application are not prevented.
func (u *interviewUsecase) Schedule(ctx context.Context, userID int64, in *domain.ScheduleInterviewInput) (*domain.Interview, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if _, err := u.applicationRepo.GetByID(ctx, in.ApplicationID); err != nil {
		return nil, err
	}

	hm, err := u.hrManagerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	iv := &domain.Interview{
		ApplicationID:   in.ApplicationID,
		InterviewerName: in.InterviewerName,
		ScheduledAt:     in.ScheduledAt,
		Type:            in.Type,
		Status:          domain.InterviewStatusScheduled,
		MeetURL:         in.MeetURL,
		HrManagerID:     hm.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.interviewRepo.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (u *interviewUsecase) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	return u.interviewRepo.GetByID(ctx, id)
}

func (u *interviewUsecase) GetAll(ctx context.Context) ([]domain.Interview, error) {
	return u.interviewRepo.GetAll(ctx)
}

func (u *interviewUsecase) GetByStatus(ctx context.Context, status string) ([]domain.Interview, error) {
	status = strings.ToUpper(status)
	if !domain.ValidInterviewStatuses[status] {
		return nil, apperror.BadRequest("Invalid interview status: " + status)
	}
	return u.interviewRepo.GetByStatus(ctx, status)
}

func (u *interviewUsecase) GetByApplication(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	if _, err := u.applicationRepo.GetByID(ctx, applicationID); err != nil {
		return nil, err
	}
	return u.interviewRepo.GetByApplicationID(ctx, applicationID)
}

// Update applies partial changes. Moving the schedule of a SCHEDULED
// interview marks it RESCHEDULED unless the caller sets a status
// explicitly.
func (u *interviewUsecase) Update(ctx context.Context, id int64, in *domain.UpdateInterviewInput) (*domain.Interview, error) {
	iv, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.InterviewerName != nil {
		iv.InterviewerName = *in.InterviewerName
	}
	if in.ScheduledAt != nil && !in.ScheduledAt.Equal(iv.ScheduledAt) {
		iv.ScheduledAt = *in.ScheduledAt
		if in.Status == nil && iv.Status == domain.InterviewStatusScheduled {
			iv.Status = domain.InterviewStatusRescheduled
		}
	}
	if in.Type != nil {
		t := strings.ToUpper(*in.Type)
		switch t {
		case domain.InterviewTypePhone, domain.InterviewTypeVideo, domain.InterviewTypeInPerson:
			iv.Type = t
		default:
			return nil, apperror.BadRequest("Invalid interview type: " + t)
		}
	}
	if in.Status != nil {
		s := strings.ToUpper(*in.Status)
		if !domain.ValidInterviewStatuses[s] {
			return nil, apperror.BadRequest("Invalid interview status: " + s)
		}
		iv.Status = s
	}
	if in.Feedback != nil {
		iv.Feedback = in.Feedback
	}
	if in.MeetURL != nil {
		iv.MeetURL = in.MeetURL
	}
	iv.UpdatedAt = time.Now()

	if err := u.interviewRepo.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (u *interviewUsecase) Delete(ctx context.Context, id int64) error {
	return u.interviewRepo.Delete(ctx, id)
}
