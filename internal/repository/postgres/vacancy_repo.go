package postgres

import (
	"context"
	"errors"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vacancyColumns = `id, title, description, department, location, employment_type,
	salary_min, salary_max, responsibilities, status, application_deadline,
	required_education, required_experience, number_of_vacancies, shift_details,
	hr_manager_id, created_at, updated_at`

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func scanVacancy(row pgx.Row, v *domain.Vacancy) error {
	return row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Department, &v.Location, &v.EmploymentType,
		&v.SalaryMin, &v.SalaryMax, &v.Responsibilities, &v.Status, &v.ApplicationDeadline,
		&v.RequiredEducation, &v.RequiredExperience, &v.NumberOfVacancies, &v.ShiftDetails,
		&v.HrManagerID, &v.CreatedAt, &v.UpdatedAt,
	)
}

func (r *vacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	query := `INSERT INTO vacancies (title, description, department, location, employment_type,
	              salary_min, salary_max, responsibilities, status, application_deadline,
	              required_education, required_experience, number_of_vacancies, shift_details,
	              hr_manager_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`
	err := r.db.QueryRow(ctx, query,
		v.Title, v.Description, v.Department, v.Location, v.EmploymentType,
		v.SalaryMin, v.SalaryMax, v.Responsibilities, v.Status, v.ApplicationDeadline,
		v.RequiredEducation, v.RequiredExperience, v.NumberOfVacancies, v.ShiftDetails,
		v.HrManagerID, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`
	var v domain.Vacancy
	if err := scanVacancy(r.db.QueryRow(ctx, query, id), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	return &v, nil
}

func (r *vacancyRepo) ListByStatus(ctx context.Context, status string) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE status = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, status)
}

func (r *vacancyRepo) ListAll(ctx context.Context) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

// Search matches the keyword case-insensitively against title, description,
// department and location. Only ACTIVE vacancies are returned; this backs
// the public search endpoint.
func (r *vacancyRepo) Search(ctx context.Context, keyword string) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies
	          WHERE status = 'ACTIVE' AND (
	              title ILIKE '%' || $1 || '%' OR
	              description ILIKE '%' || $1 || '%' OR
	              department ILIKE '%' || $1 || '%' OR
	              location ILIKE '%' || $1 || '%')
	          ORDER BY created_at DESC`
	return r.queryList(ctx, query, keyword)
}

func (r *vacancyRepo) queryList(ctx context.Context, query string, args ...interface{}) ([]domain.Vacancy, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		if err := scanVacancy(rows, &v); err != nil {
			return nil, apperror.Internal(err)
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return vacancies, nil
}

func (r *vacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	query := `UPDATE vacancies SET title = $2, description = $3, department = $4, location = $5,
	              employment_type = $6, salary_min = $7, salary_max = $8, responsibilities = $9,
	              status = $10, application_deadline = $11, required_education = $12,
	              required_experience = $13, number_of_vacancies = $14, shift_details = $15,
	              updated_at = $16
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.Department, v.Location,
		v.EmploymentType, v.SalaryMin, v.SalaryMax, v.Responsibilities,
		v.Status, v.ApplicationDeadline, v.RequiredEducation,
		v.RequiredExperience, v.NumberOfVacancies, v.ShiftDetails, v.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Vacancy not found")
	}
	return nil
}

// Delete removes a vacancy and everything hanging off it: applications,
// their interviews and their hirings, in one transaction.
func (r *vacancyRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM interviews WHERE application_id IN
	    (SELECT id FROM applications WHERE vacancy_id = $1)`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM hirings WHERE vacancy_id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM applications WHERE vacancy_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Vacancy not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
