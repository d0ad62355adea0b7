package postgres

import (
	"context"
	"errors"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `id, email, password, first_name, last_name, phone_number, role,
	skills, date_of_birth, address, city, state, country, zip_code, summary,
	is_active, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.Role,
		&u.Skills, &u.DateOfBirth, &u.Address, &u.City, &u.State, &u.Country, &u.ZipCode, &u.Summary,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, phone_number, role,
	              skills, date_of_birth, address, city, state, country, zip_code, summary,
	              is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName, user.PhoneNumber, user.Role,
		user.Skills, user.DateOfBirth, user.Address, user.City, user.State, user.Country,
		user.ZipCode, user.Summary, user.IsActive, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.BadRequest("Email is already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET first_name = $2, last_name = $3, phone_number = $4,
	              skills = $5, date_of_birth = $6, address = $7, city = $8, state = $9,
	              country = $10, zip_code = $11, summary = $12, is_active = $13, updated_at = $14
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.PhoneNumber,
		user.Skills, user.DateOfBirth, user.Address, user.City, user.State,
		user.Country, user.ZipCode, user.Summary, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// Delete removes a user together with its applications and their interviews
// and hirings, inside one transaction. The schema's ON DELETE CASCADE would
// cover this too; the explicit deletes keep the behavior independent of who
// created the schema.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM interviews WHERE application_id IN
	    (SELECT id FROM applications WHERE user_id = $1)`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM hirings WHERE application_id IN
	    (SELECT id FROM applications WHERE user_id = $1)`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM applications WHERE user_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) ListCandidates(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, domain.RoleUser)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, apperror.Internal(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}
