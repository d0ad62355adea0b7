package v1

import (
	"net/http"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

// NewDashboardHandler registers dashboard routes
func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/hr/stats", handler.HRStats)
		dashboard.GET("/applicant/stats", handler.ApplicantStats)
	}
}

// HRStats godoc
// @Summary      Recruitment funnel statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Failure      403  {object}  response.Response
// @Router       /dashboard/hr/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) HRStats(c *gin.Context) {
	stats, err := h.dashboardUC.HRStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}

// ApplicantStats godoc
// @Summary      Caller's own application statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Router       /dashboard/applicant/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) ApplicantStats(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	stats, err := h.dashboardUC.ApplicantStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}
