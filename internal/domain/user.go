package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleHrManager = "HRMANAGER"
	RoleUser      = "USER"
)

// User is an account holder: a candidate, an HR manager or an admin.
// Password always holds the bcrypt hash, never plaintext.
type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	Role        string     `json:"role"` // ADMIN, HRMANAGER, USER
	Skills      *string    `json:"skills,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	City        *string    `json:"city,omitempty"`
	State       *string    `json:"state,omitempty"`
	Country     *string    `json:"country,omitempty"`
	ZipCode     *string    `json:"zip_code,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HrManager extends a User with role HRMANAGER. It owns the vacancies,
// interviews and hirings it created.
type HrManager struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	DepartmentName string    `json:"department_name"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined for display
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	ListCandidates(ctx context.Context) ([]User, error)
}

type HrManagerRepository interface {
	Create(ctx context.Context, hm *HrManager) error
	GetByUserID(ctx context.Context, userID int64) (*HrManager, error)
	GetByID(ctx context.Context, id int64) (*HrManager, error)
}

// SignUpInput carries validated signup data into the auth usecase.
type SignUpInput struct {
	Email          string     `validate:"required,email"`
	Password       string     `validate:"required,min=8"`
	FirstName      string     `validate:"required"`
	LastName       string     `validate:"required"`
	PhoneNumber    string     `validate:"required"`
	Role           string     `validate:"required,oneof=ADMIN HRMANAGER USER"`
	DepartmentName string     // required when Role is HRMANAGER
	Skills         *string
	DateOfBirth    *time.Time
	Address        *string
	City           *string
	State          *string
	Country        *string
	ZipCode        *string
	Summary        *string
}

// UpdateProfileInput carries the mutable profile fields. Email and Role are
// immutable after signup.
type UpdateProfileInput struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	PhoneNumber string `validate:"required"`
	Skills      *string
	DateOfBirth *time.Time
	Address     *string
	City        *string
	State       *string
	Country     *string
	ZipCode     *string
	Summary     *string
}

type AuthUsecase interface {
	SignUp(ctx context.Context, in *SignUpInput) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, string, error)
	GetProfile(ctx context.Context, userID int64) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, in *UpdateProfileInput) (*User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListCandidates(ctx context.Context) ([]User, error)
}
