package usecase

import (
	"context"
	"time"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"
	"go-hiring-portal/pkg/auth"

	"github.com/go-playground/validator/v10"
)

// signInFailedMsg is deliberately identical for unknown email and wrong
// password so the response does not reveal which one it was.
const signInFailedMsg = "Invalid email or password"

// signInDummyHash is a throwaway bcrypt hash compared against when the
// email is unknown, so sign-in costs one bcrypt comparison on every path
// and response time does not reveal whether the account exists.
const signInDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authUsecase struct {
	userRepo      domain.UserRepository
	hrManagerRepo domain.HrManagerRepository
	tokens        *auth.TokenService
	validate      *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	hrManagerRepo domain.HrManagerRepository,
	tokens *auth.TokenService,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		hrManagerRepo: hrManagerRepo,
		tokens:        tokens,
		validate:      validate,
	}
}

// SignUp creates a new account with a bcrypt-hashed password. Duplicate
// emails fail with a 400; the unique index on users.email backstops the
// pre-check under concurrency.
func (u *authUsecase) SignUp(ctx context.Context, in *domain.SignUpInput) (*domain.User, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if in.Role == domain.RoleHrManager && in.DepartmentName == "" {
		return nil, apperror.BadRequest("Department name is required for HR managers")
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.BadRequest("Email is already registered")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Email:       in.Email,
		Password:    hash,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Role:        in.Role,
		Skills:      in.Skills,
		DateOfBirth: in.DateOfBirth,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		ZipCode:     in.ZipCode,
		Summary:     in.Summary,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == domain.RoleHrManager {
		hm := &domain.HrManager{
			UserID:         user.ID,
			DepartmentName: in.DepartmentName,
			CreatedAt:      now,
		}
		if err := u.hrManagerRepo.Create(ctx, hm); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// SignIn verifies credentials and returns the user plus a signed token.
func (u *authUsecase) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		auth.CheckPassword(signInDummyHash, password)
		return nil, "", apperror.Unauthorized(signInFailedMsg)
	}
	if !user.IsActive {
		return nil, "", apperror.Unauthorized(signInFailedMsg)
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperror.Unauthorized(signInFailedMsg)
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UpdateProfile mutates the profile fields only. Email and role stay as
// they were at signup.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID int64, in *domain.UpdateProfileInput) (*domain.User, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.PhoneNumber = in.PhoneNumber
	user.Skills = in.Skills
	user.DateOfBirth = in.DateOfBirth
	user.Address = in.Address
	user.City = in.City
	user.State = in.State
	user.Country = in.Country
	user.ZipCode = in.ZipCode
	user.Summary = in.Summary
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("New password must be at least 8 characters")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, oldPassword) {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePassword(ctx, userID, hash)
}

func (u *authUsecase) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) DeleteUser(ctx context.Context, id int64) error {
	return u.userRepo.Delete(ctx, id)
}

func (u *authUsecase) ListCandidates(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.ListCandidates(ctx)
}
