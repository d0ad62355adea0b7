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

const applicationSelect = `SELECT a.id, a.vacancy_id, a.user_id, a.status, a.cover_letter,
	a.resume_file_name, a.resume_file_path, a.created_at, a.updated_at,
	u.first_name || ' ' || u.last_name, u.email, v.title
	FROM applications a
	JOIN users u ON u.id = a.user_id
	JOIN vacancies v ON v.id = a.vacancy_id`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row, a *domain.Application) error {
	return row.Scan(
		&a.ID, &a.VacancyID, &a.UserID, &a.Status, &a.CoverLetter,
		&a.ResumeFileName, &a.ResumeFilePath, &a.CreatedAt, &a.UpdatedAt,
		&a.ApplicantName, &a.ApplicantEmail, &a.VacancyTitle,
	)
}

// Create inserts the application. The unique index on (user_id, vacancy_id)
// turns a concurrent duplicate apply into a 23505, reported the same way as
// a plain duplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (vacancy_id, user_id, status, cover_letter,
	              resume_file_name, resume_file_path, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.VacancyID, app.UserID, app.Status, app.CoverLetter,
		app.ResumeFileName, app.ResumeFilePath, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.BadRequest("You have already applied for this vacancy")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id = $1`
	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id), &app); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return &app, nil
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.user_id = $1 ORDER BY a.created_at DESC`
	return r.queryList(ctx, query, userID)
}

func (r *applicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.vacancy_id = $1 ORDER BY a.created_at DESC`
	return r.queryList(ctx, query, vacancyID)
}

func (r *applicationRepo) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.status = $1 ORDER BY a.created_at DESC`
	return r.queryList(ctx, query, status)
}

func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	query := applicationSelect + ` ORDER BY a.created_at DESC`
	return r.queryList(ctx, query)
}

func (r *applicationRepo) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, apperror.Internal(err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (r *applicationRepo) Exists(ctx context.Context, userID, vacancyID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND vacancy_id = $2)`,
		userID, vacancyID,
	).Scan(&exists)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Application not found")
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Application not found")
	}
	return nil
}

// DeleteCascade removes the application together with its interviews and
// hirings, inside one transaction.
func (r *applicationRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM interviews WHERE application_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM hirings WHERE application_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Application not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
