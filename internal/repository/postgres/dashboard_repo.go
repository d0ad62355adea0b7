package postgres

import (
	"context"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

// HRStats aggregates the recruitment funnel in a single round trip.
func (r *dashboardRepo) HRStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `SELECT
	    (SELECT COUNT(*) FROM vacancies),
	    (SELECT COUNT(*) FROM vacancies WHERE status = 'ACTIVE'),
	    (SELECT COUNT(*) FROM applications),
	    (SELECT COUNT(DISTINCT user_id) FROM applications),
	    (SELECT COUNT(*) FROM interviews WHERE status = 'SCHEDULED'),
	    (SELECT COUNT(*) FROM interviews WHERE status = 'COMPLETED'),
	    (SELECT COUNT(*) FROM applications WHERE status = 'SELECTED'),
	    (SELECT COUNT(*) FROM applications WHERE status = 'REJECTED')`

	var s domain.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalVacancies, &s.OpenVacancies,
		&s.TotalApplications, &s.TotalApplicants,
		&s.ScheduledInterviews, &s.CompletedInterviews,
		&s.HiredCount, &s.RejectedCount,
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if s.TotalApplications > 0 {
		s.HiringRate = float64(s.HiredCount) / float64(s.TotalApplications)
		s.InterviewRate = float64(s.ScheduledInterviews+s.CompletedInterviews) / float64(s.TotalApplications)
	}
	return &s, nil
}

// ApplicantStats aggregates the caller's own funnel.
func (r *dashboardRepo) ApplicantStats(ctx context.Context, userID int64) (*domain.DashboardStats, error) {
	query := `SELECT
	    (SELECT COUNT(*) FROM vacancies WHERE status = 'ACTIVE'),
	    (SELECT COUNT(*) FROM applications WHERE user_id = $1),
	    (SELECT COUNT(*) FROM interviews i JOIN applications a ON a.id = i.application_id
	        WHERE a.user_id = $1 AND i.status = 'SCHEDULED'),
	    (SELECT COUNT(*) FROM interviews i JOIN applications a ON a.id = i.application_id
	        WHERE a.user_id = $1 AND i.status = 'COMPLETED'),
	    (SELECT COUNT(*) FROM applications WHERE user_id = $1 AND status = 'SELECTED'),
	    (SELECT COUNT(*) FROM applications WHERE user_id = $1 AND status = 'REJECTED')`

	var s domain.DashboardStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.OpenVacancies, &s.TotalApplications,
		&s.ScheduledInterviews, &s.CompletedInterviews,
		&s.HiredCount, &s.RejectedCount,
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &s, nil
}
