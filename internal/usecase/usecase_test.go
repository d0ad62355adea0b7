package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/internal/usecase"
	"go-hiring-portal/pkg/apperror"
	"go-hiring-portal/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) ListCandidates(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockHrManagerRepo struct {
	mock.Mock
}

func (m *MockHrManagerRepo) Create(ctx context.Context, hm *domain.HrManager) error {
	return m.Called(ctx, hm).Error(0)
}
func (m *MockHrManagerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.HrManager, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrManager), args.Error(1)
}
func (m *MockHrManagerRepo) GetByID(ctx context.Context, id int64) (*domain.HrManager, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrManager), args.Error(1)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) ListByStatus(ctx context.Context, status string) ([]domain.Vacancy, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) ListAll(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Search(ctx context.Context, keyword string) ([]domain.Vacancy, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, userID, vacancyID int64) (bool, error) {
	args := m.Called(ctx, userID, vacancyID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockApplicationRepo) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockHiringRepo struct {
	mock.Mock
}

func (m *MockHiringRepo) Create(ctx context.Context, h *domain.Hiring) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHiringRepo) GetByID(ctx context.Context, id int64) (*domain.Hiring, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hiring), args.Error(1)
}
func (m *MockHiringRepo) GetAll(ctx context.Context) ([]domain.Hiring, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hiring), args.Error(1)
}
func (m *MockHiringRepo) GetByDecision(ctx context.Context, decision string) ([]domain.Hiring, error) {
	args := m.Called(ctx, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hiring), args.Error(1)
}
func (m *MockHiringRepo) GetLatestByApplicationID(ctx context.Context, applicationID int64) (*domain.Hiring, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hiring), args.Error(1)
}
func (m *MockHiringRepo) Update(ctx context.Context, h *domain.Hiring) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHiringRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newAuthUC(userRepo *MockUserRepo, hmRepo *MockHrManagerRepo) domain.AuthUsecase {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return usecase.NewAuthUsecase(userRepo, hmRepo, tokens, validator.New())
}

func validSignUp() *domain.SignUpInput {
	return &domain.SignUpInput{
		Email:       "jane@example.com",
		Password:    "password123",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "555-0100",
		Role:        domain.RoleUser,
	}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockHrManagerRepo))

		userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		_, err := uc.SignUp(ctx, validSignUp())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email is already registered")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require department for HR managers", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo), new(MockHrManagerRepo))

		in := validSignUp()
		in.Role = domain.RoleHrManager
		in.DepartmentName = ""

		_, err := uc.SignUp(ctx, in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Department name is required")
	})

	t.Run("Should create hr_managers row for HR signups", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := newAuthUC(userRepo, hmRepo)

		userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		})
		hmRepo.On("Create", ctx, mock.AnythingOfType("*domain.HrManager")).Return(nil).Run(func(args mock.Arguments) {
			hm := args.Get(1).(*domain.HrManager)
			assert.Equal(t, int64(7), hm.UserID)
			assert.Equal(t, "Engineering", hm.DepartmentName)
		})

		in := validSignUp()
		in.Role = domain.RoleHrManager
		in.DepartmentName = "Engineering"

		user, err := uc.SignUp(ctx, in)
		assert.NoError(t, err)
		assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
		assert.True(t, user.IsActive)
		hmRepo.AssertExpectations(t)
	})

	t.Run("Should not create hr_managers row for candidates", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := newAuthUC(userRepo, hmRepo)

		userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		_, err := uc.SignUp(ctx, validSignUp())
		assert.NoError(t, err)
		hmRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSignInUniformFailure(t *testing.T) {
	ctx := context.Background()
	hash, _ := auth.HashPassword("correct-password")

	t.Run("Unknown email and wrong password read the same", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockHrManagerRepo))

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperror.NotFound("User not found"))
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{
			ID: 1, Email: "jane@example.com", Password: hash, Role: domain.RoleUser, IsActive: true,
		}, nil)

		_, _, errUnknown := uc.SignIn(ctx, "ghost@example.com", "whatever")
		_, _, errWrongPw := uc.SignIn(ctx, "jane@example.com", "wrong-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())

		appErr, ok := errUnknown.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Deactivated account cannot sign in", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockHrManagerRepo))

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{
			ID: 1, Email: "jane@example.com", Password: hash, Role: domain.RoleUser, IsActive: false,
		}, nil)

		_, _, err := uc.SignIn(ctx, "jane@example.com", "correct-password")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Valid credentials yield a token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockHrManagerRepo))

		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{
			ID: 1, Email: "jane@example.com", Password: hash, Role: domain.RoleUser, IsActive: true,
		}, nil)

		user, token, err := uc.SignIn(ctx, "jane@example.com", "correct-password")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(1), user.ID)
	})
}

func TestApplyForJob(t *testing.T) {
	ctx := context.Background()

	activeVacancy := func() *domain.Vacancy {
		return &domain.Vacancy{
			ID:                  5,
			Status:              domain.VacancyStatusActive,
			ApplicationDeadline: time.Now().Add(48 * time.Hour),
		}
	}

	t.Run("Should reject non-active vacancy", func(t *testing.T) {
		vacRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacRepo, validator.New())

		v := activeVacancy()
		v.Status = domain.VacancyStatusClosed
		vacRepo.On("GetByID", ctx, int64(5)).Return(v, nil)

		_, err := uc.ApplyForJob(ctx, 1, &domain.ApplyInput{VacancyID: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not open for applications")
	})

	t.Run("Should reject past deadline", func(t *testing.T) {
		vacRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacRepo, validator.New())

		v := activeVacancy()
		v.ApplicationDeadline = time.Now().Add(-time.Hour)
		vacRepo.On("GetByID", ctx, int64(5)).Return(v, nil)

		_, err := uc.ApplyForJob(ctx, 1, &domain.ApplyInput{VacancyID: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deadline has passed")
	})

	t.Run("Should reject duplicate application", func(t *testing.T) {
		vacRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacRepo, validator.New())

		vacRepo.On("GetByID", ctx, int64(5)).Return(activeVacancy(), nil)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(true, nil)

		_, err := uc.ApplyForJob(ctx, 1, &domain.ApplyInput{VacancyID: 5})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should submit against an open vacancy", func(t *testing.T) {
		vacRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacRepo, validator.New())

		vacRepo.On("GetByID", ctx, int64(5)).Return(activeVacancy(), nil)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.ApplyForJob(ctx, 1, &domain.ApplyInput{VacancyID: 5})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
		assert.Equal(t, int64(1), app.UserID)
		assert.Equal(t, int64(5), app.VacancyID)
	})
}

func TestApplicationStatusTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockVacancyRepo), validator.New())

		_, err := uc.UpdateStatus(ctx, 3, "APPROVED")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
	})

	t.Run("Should not leave a terminal status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{
			ID: 3, Status: domain.ApplicationStatusRejected,
		}, nil)

		_, err := uc.UpdateStatus(ctx, 3, domain.ApplicationStatusShortlisted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot change status")
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should move through review statuses", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{
			ID: 3, Status: domain.ApplicationStatusSubmitted,
		}, nil)
		appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusUnderReview).Return(nil)

		app, err := uc.UpdateStatus(ctx, 3, "under_review")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusUnderReview, app.Status)
	})
}

func TestHiringDecision(t *testing.T) {
	ctx := context.Background()

	input := func(decision string) *domain.HiringInput {
		return &domain.HiringInput{
			ApplicationID:   3,
			InterviewerName: "Sam Lee",
			Decision:        decision,
			SalaryOffered:   90000,
			StartDate:       time.Now().AddDate(0, 1, 0),
		}
	}

	t.Run("SELECTED decision moves the application with it", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		appRepo := new(MockApplicationRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, appRepo, hmRepo, validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, VacancyID: 5}, nil)
		hmRepo.On("GetByUserID", ctx, int64(9)).Return(&domain.HrManager{ID: 2, UserID: 9}, nil)
		hiringRepo.On("Create", ctx, mock.AnythingOfType("*domain.Hiring")).Return(nil)
		appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusSelected).Return(nil)

		h, err := uc.Create(ctx, 9, input(domain.DecisionSelected))
		assert.NoError(t, err)
		assert.Equal(t, int64(5), h.VacancyID, "vacancy is copied from the application")
		assert.Equal(t, int64(2), h.HrManagerID)
		appRepo.AssertExpectations(t)
	})

	t.Run("Terminal application blocks a contrary decision", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		appRepo := new(MockApplicationRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, appRepo, hmRepo, validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{
			ID: 3, VacancyID: 5, Status: domain.ApplicationStatusRejected,
		}, nil)

		_, err := uc.Create(ctx, 9, input(domain.DecisionSelected))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot change status")
		hiringRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repeating the terminal decision records another row", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		appRepo := new(MockApplicationRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, appRepo, hmRepo, validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{
			ID: 3, VacancyID: 5, Status: domain.ApplicationStatusSelected,
		}, nil)
		hmRepo.On("GetByUserID", ctx, int64(9)).Return(&domain.HrManager{ID: 2, UserID: 9}, nil)
		hiringRepo.On("Create", ctx, mock.AnythingOfType("*domain.Hiring")).Return(nil)

		_, err := uc.Create(ctx, 9, input(domain.DecisionSelected))
		assert.NoError(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed status update surfaces to the caller", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		appRepo := new(MockApplicationRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, appRepo, hmRepo, validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{
			ID: 3, VacancyID: 5, Status: domain.ApplicationStatusInterviewed,
		}, nil)
		hmRepo.On("GetByUserID", ctx, int64(9)).Return(&domain.HrManager{ID: 2, UserID: 9}, nil)
		hiringRepo.On("Create", ctx, mock.AnythingOfType("*domain.Hiring")).Return(nil)
		appRepo.On("UpdateStatus", ctx, int64(3), domain.ApplicationStatusSelected).
			Return(apperror.Internal(assert.AnError))

		_, err := uc.Create(ctx, 9, input(domain.DecisionSelected))
		assert.Error(t, err)
	})

	t.Run("HOLD decision leaves the application alone", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		appRepo := new(MockApplicationRepo)
		hmRepo := new(MockHrManagerRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, appRepo, hmRepo, validator.New())

		appRepo.On("GetByID", ctx, int64(3)).Return(&domain.Application{ID: 3, VacancyID: 5}, nil)
		hmRepo.On("GetByUserID", ctx, int64(9)).Return(&domain.HrManager{ID: 2, UserID: 9}, nil)
		hiringRepo.On("Create", ctx, mock.AnythingOfType("*domain.Hiring")).Return(nil)

		_, err := uc.Create(ctx, 9, input(domain.DecisionHold))
		assert.NoError(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reads take the newest decision", func(t *testing.T) {
		hiringRepo := new(MockHiringRepo)
		uc := usecase.NewHiringUsecase(hiringRepo, new(MockApplicationRepo), new(MockHrManagerRepo), validator.New())

		hiringRepo.On("GetLatestByApplicationID", ctx, int64(3)).Return(&domain.Hiring{
			ID: 11, ApplicationID: 3, Decision: domain.DecisionSelected,
		}, nil)

		h, err := uc.GetByApplication(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), h.ID)
	})
}

func TestInterviewReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Moving a scheduled interview marks it rescheduled", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), new(MockHrManagerRepo), validator.New())

		original := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		ivRepo.On("GetByID", ctx, int64(4)).Return(&domain.Interview{
			ID: 4, Status: domain.InterviewStatusScheduled, ScheduledAt: original,
		}, nil)
		ivRepo.On("Update", ctx, mock.AnythingOfType("*domain.Interview")).Return(nil)

		moved := original.Add(24 * time.Hour)
		iv, err := uc.Update(ctx, 4, &domain.UpdateInterviewInput{ScheduledAt: &moved})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusRescheduled, iv.Status)
		assert.Equal(t, moved, iv.ScheduledAt)
	})

	t.Run("Explicit status wins over the reschedule rule", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), new(MockHrManagerRepo), validator.New())

		original := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		ivRepo.On("GetByID", ctx, int64(4)).Return(&domain.Interview{
			ID: 4, Status: domain.InterviewStatusScheduled, ScheduledAt: original,
		}, nil)
		ivRepo.On("Update", ctx, mock.AnythingOfType("*domain.Interview")).Return(nil)

		moved := original.Add(24 * time.Hour)
		status := domain.InterviewStatusCancelled
		iv, err := uc.Update(ctx, 4, &domain.UpdateInterviewInput{ScheduledAt: &moved, Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCancelled, iv.Status)
	})
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) GetAll(ctx context.Context) ([]domain.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) GetByStatus(ctx context.Context, status string) ([]domain.Interview, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
