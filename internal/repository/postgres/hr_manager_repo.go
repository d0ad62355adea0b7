package postgres

import (
	"context"
	"errors"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hrManagerRepo struct {
	db *pgxpool.Pool
}

func NewHrManagerRepository(db *pgxpool.Pool) domain.HrManagerRepository {
	return &hrManagerRepo{db: db}
}

func (r *hrManagerRepo) Create(ctx context.Context, hm *domain.HrManager) error {
	query := `INSERT INTO hr_managers (user_id, department_name, created_at)
	          VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, hm.UserID, hm.DepartmentName, hm.CreatedAt).Scan(&hm.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *hrManagerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.HrManager, error) {
	query := `SELECT hm.id, hm.user_id, hm.department_name, hm.created_at,
	                 u.first_name, u.last_name, u.email
	          FROM hr_managers hm
	          JOIN users u ON u.id = hm.user_id
	          WHERE hm.user_id = $1`
	var hm domain.HrManager
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&hm.ID, &hm.UserID, &hm.DepartmentName, &hm.CreatedAt,
		&hm.FirstName, &hm.LastName, &hm.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("HR manager profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return &hm, nil
}

func (r *hrManagerRepo) GetByID(ctx context.Context, id int64) (*domain.HrManager, error) {
	query := `SELECT hm.id, hm.user_id, hm.department_name, hm.created_at,
	                 u.first_name, u.last_name, u.email
	          FROM hr_managers hm
	          JOIN users u ON u.id = hm.user_id
	          WHERE hm.id = $1`
	var hm domain.HrManager
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hm.ID, &hm.UserID, &hm.DepartmentName, &hm.CreatedAt,
		&hm.FirstName, &hm.LastName, &hm.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("HR manager profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return &hm, nil
}
