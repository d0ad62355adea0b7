package postgres

import (
	"context"
	"errors"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const hiringSelect = `SELECT h.id, h.application_id, h.vacancy_id, h.interviewer_name,
	h.decision, h.salary_offered, h.start_date, h.hr_manager_id, h.notes,
	h.created_at, h.updated_at,
	u.first_name || ' ' || u.last_name, u.email, v.title,
	hu.first_name || ' ' || hu.last_name
	FROM hirings h
	JOIN applications a ON a.id = h.application_id
	JOIN users u ON u.id = a.user_id
	JOIN vacancies v ON v.id = h.vacancy_id
	JOIN hr_managers hm ON hm.id = h.hr_manager_id
	JOIN users hu ON hu.id = hm.user_id`

type hiringRepo struct {
	db *pgxpool.Pool
}

func NewHiringRepository(db *pgxpool.Pool) domain.HiringRepository {
	return &hiringRepo{db: db}
}

func scanHiring(row pgx.Row, h *domain.Hiring) error {
	return row.Scan(
		&h.ID, &h.ApplicationID, &h.VacancyID, &h.InterviewerName,
		&h.Decision, &h.SalaryOffered, &h.StartDate, &h.HrManagerID, &h.Notes,
		&h.CreatedAt, &h.UpdatedAt,
		&h.ApplicantName, &h.ApplicantEmail, &h.VacancyTitle, &h.HrManagerName,
	)
}

func (r *hiringRepo) Create(ctx context.Context, h *domain.Hiring) error {
	query := `INSERT INTO hirings (application_id, vacancy_id, interviewer_name, decision,
	              salary_offered, start_date, hr_manager_id, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		h.ApplicationID, h.VacancyID, h.InterviewerName, h.Decision,
		h.SalaryOffered, h.StartDate, h.HrManagerID, h.Notes, h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *hiringRepo) GetByID(ctx context.Context, id int64) (*domain.Hiring, error) {
	query := hiringSelect + ` WHERE h.id = $1`
	var h domain.Hiring
	if err := scanHiring(r.db.QueryRow(ctx, query, id), &h); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Hiring record not found")
		}
		return nil, apperror.Internal(err)
	}
	return &h, nil
}

func (r *hiringRepo) GetAll(ctx context.Context) ([]domain.Hiring, error) {
	query := hiringSelect + ` ORDER BY h.created_at DESC`
	return r.queryList(ctx, query)
}

func (r *hiringRepo) GetByDecision(ctx context.Context, decision string) ([]domain.Hiring, error) {
	query := hiringSelect + ` WHERE h.decision = $1 ORDER BY h.created_at DESC`
	return r.queryList(ctx, query, decision)
}

// GetLatestByApplicationID returns the newest hiring row for an application.
// The data model allows several rows per application; the latest one is
// authoritative.
func (r *hiringRepo) GetLatestByApplicationID(ctx context.Context, applicationID int64) (*domain.Hiring, error) {
	query := hiringSelect + ` WHERE h.application_id = $1 ORDER BY h.created_at DESC LIMIT 1`
	var h domain.Hiring
	if err := scanHiring(r.db.QueryRow(ctx, query, applicationID), &h); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("No hiring decision for this application")
		}
		return nil, apperror.Internal(err)
	}
	return &h, nil
}

func (r *hiringRepo) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Hiring, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var hirings []domain.Hiring
	for rows.Next() {
		var h domain.Hiring
		if err := scanHiring(rows, &h); err != nil {
			return nil, apperror.Internal(err)
		}
		hirings = append(hirings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return hirings, nil
}

func (r *hiringRepo) Update(ctx context.Context, h *domain.Hiring) error {
	query := `UPDATE hirings SET interviewer_name = $2, decision = $3, salary_offered = $4,
	              start_date = $5, notes = $6, updated_at = $7
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		h.ID, h.InterviewerName, h.Decision, h.SalaryOffered,
		h.StartDate, h.Notes, h.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Hiring record not found")
	}
	return nil
}

func (r *hiringRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hirings WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Hiring record not found")
	}
	return nil
}
