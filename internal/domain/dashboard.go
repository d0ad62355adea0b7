package domain

import "context"

// DashboardStats aggregates counters for the HR and applicant dashboards.
// The applicant view fills only the application/interview fields.
type DashboardStats struct {
	TotalVacancies      int     `json:"total_vacancies"`
	OpenVacancies       int     `json:"open_vacancies"`
	TotalApplications   int     `json:"total_applications"`
	TotalApplicants     int     `json:"total_applicants"`
	ScheduledInterviews int     `json:"scheduled_interviews"`
	CompletedInterviews int     `json:"completed_interviews"`
	HiredCount          int     `json:"hired_count"`
	RejectedCount       int     `json:"rejected_count"`
	HiringRate          float64 `json:"hiring_rate"`
	InterviewRate       float64 `json:"interview_rate"`
}

type DashboardRepository interface {
	HRStats(ctx context.Context) (*DashboardStats, error)
	ApplicantStats(ctx context.Context, userID int64) (*DashboardStats, error)
}

type DashboardUsecase interface {
	HRStats(ctx context.Context) (*DashboardStats, error)
	ApplicantStats(ctx context.Context, userID int64) (*DashboardStats, error)
}
