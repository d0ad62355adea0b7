package postgres

import (
	"context"
	"errors"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewSelect = `SELECT i.id, i.application_id, i.interviewer_name, i.scheduled_at,
	i.type, i.status, i.feedback, i.meet_url, i.hr_manager_id, i.created_at, i.updated_at,
	u.first_name || ' ' || u.last_name, v.title
	FROM interviews i
	JOIN applications a ON a.id = i.application_id
	JOIN users u ON u.id = a.user_id
	JOIN vacancies v ON v.id = a.vacancy_id`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func scanInterview(row pgx.Row, iv *domain.Interview) error {
	return row.Scan(
		&iv.ID, &iv.ApplicationID, &iv.InterviewerName, &iv.ScheduledAt,
		&iv.Type, &iv.Status, &iv.Feedback, &iv.MeetURL, &iv.HrManagerID,
		&iv.CreatedAt, &iv.UpdatedAt,
		&iv.ApplicantName, &iv.VacancyTitle,
	)
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `INSERT INTO interviews (application_id, interviewer_name, scheduled_at, type,
	              status, feedback, meet_url, hr_manager_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		iv.ApplicationID, iv.InterviewerName, iv.ScheduledAt, iv.Type,
		iv.Status, iv.Feedback, iv.MeetURL, iv.HrManagerID, iv.CreatedAt, iv.UpdatedAt,
	).Scan(&iv.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := interviewSelect + ` WHERE i.id = $1`
	var iv domain.Interview
	if err := scanInterview(r.db.QueryRow(ctx, query, id), &iv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	return &iv, nil
}

func (r *interviewRepo) GetAll(ctx context.Context) ([]domain.Interview, error) {
	query := interviewSelect + ` ORDER BY i.scheduled_at DESC`
	return r.queryList(ctx, query)
}

func (r *interviewRepo) GetByStatus(ctx context.Context, status string) ([]domain.Interview, error) {
	query := interviewSelect + ` WHERE i.status = $1 ORDER BY i.scheduled_at DESC`
	return r.queryList(ctx, query, status)
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	query := interviewSelect + ` WHERE i.application_id = $1 ORDER BY i.scheduled_at DESC`
	return r.queryList(ctx, query, applicationID)
}

func (r *interviewRepo) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := scanInterview(rows, &iv); err != nil {
			return nil, apperror.Internal(err)
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `UPDATE interviews SET interviewer_name = $2, scheduled_at = $3, type = $4,
	              status = $5, feedback = $6, meet_url = $7, updated_at = $8
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		iv.ID, iv.InterviewerName, iv.ScheduledAt, iv.Type,
		iv.Status, iv.Feedback, iv.MeetURL, iv.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Interview not found")
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Interview not found")
	}
	return nil
}
