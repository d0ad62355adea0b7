package usecase

import (
	"context"

	"go-hiring-portal/internal/domain"
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
}

func NewDashboardUsecase(dashboardRepo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{dashboardRepo: dashboardRepo}
}

func (u *dashboardUsecase) HRStats(ctx context.Context) (*domain.DashboardStats, error) {
	return u.dashboardRepo.HRStats(ctx)
}

func (u *dashboardUsecase) ApplicantStats(ctx context.Context, userID int64) (*domain.DashboardStats, error) {
	return u.dashboardRepo.ApplicantStats(ctx, userID)
}
