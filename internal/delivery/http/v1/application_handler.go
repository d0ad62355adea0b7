package v1

import (
	"net/http"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		// Candidate routes
		applications.POST("/apply", handler.Apply)
		applications.GET("/my", handler.GetMyApplications)
		applications.GET("/user/:userId", handler.GetByUser)
		applications.GET("/check-applied/:vacancyId", handler.CheckApplied)

		// HR routes
		applications.GET("", handler.GetAll)
		applications.GET("/vacancy/:vacancyId", handler.GetByVacancy)
		applications.GET("/status/:status", handler.GetByStatus)
		applications.GET("/:id", handler.GetByID)
		applications.PUT("/:id/status/:status", handler.UpdateStatus)
		applications.DELETE("/:id", handler.Delete)
	}
}

// ApplyRequest is the apply payload
type ApplyRequest struct {
	VacancyID      int64   `json:"vacancy_id" binding:"required"`
	CoverLetter    *string `json:"cover_letter"`
	ResumeFileName *string `json:"resume_file_name"`
	ResumeFilePath *string `json:"resume_file_path"`
}

// Apply godoc
// @Summary      Apply for a vacancy
// @Description  Submits an application against an open vacancy. A second
// @Description  application for the same vacancy fails with 400.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.ApplyForJob(c.Request.Context(), userID, &domain.ApplyInput{
		VacancyID:      req.VacancyID,
		CoverLetter:    req.CoverLetter,
		ResumeFileName: req.ResumeFileName,
		ResumeFilePath: req.ResumeFilePath,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetByUser godoc
// @Summary      List a user's applications
// @Description  Callers may only list their own applications.
// @Tags         applications
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      403     {object}  response.Response
// @Router       /applications/user/{userId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetByUser(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}
	if userID != c.GetInt64(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only view your own applications"))
		return
	}

	apps, err := h.applicationUC.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// CheckApplied godoc
// @Summary      Check whether the caller applied for a vacancy
// @Tags         applications
// @Produce      json
// @Param        vacancyId  path      int  true  "Vacancy ID"
// @Success      200        {object}  response.Response{data=bool}
// @Router       /applications/check-applied/{vacancyId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) CheckApplied(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	vacancyID, err := paramID(c, "vacancyId")
	if err != nil {
		c.Error(err)
		return
	}

	applied, err := h.applicationUC.HasApplied(c.Request.Context(), userID, vacancyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Check complete", applied)
}

// GetAll godoc
// @Summary      List all applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetAll(c *gin.Context) {
	apps, err := h.applicationUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetByVacancy godoc
// @Summary      List applications for a vacancy
// @Tags         applications
// @Produce      json
// @Param        vacancyId  path      int  true  "Vacancy ID"
// @Success      200        {object}  response.Response{data=[]domain.Application}
// @Router       /applications/vacancy/{vacancyId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetByVacancy(c *gin.Context) {
	vacancyID, err := paramID(c, "vacancyId")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.GetByVacancy(c.Request.Context(), vacancyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetByStatus godoc
// @Summary      List applications by status
// @Tags         applications
// @Produce      json
// @Param        status  path      string  true  "Application status"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      400     {object}  response.Response
// @Router       /applications/status/{status} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetByStatus(c *gin.Context) {
	apps, err := h.applicationUC.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetByID godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// UpdateStatus godoc
// @Summary      Move an application to a new status
// @Description  REJECTED and SELECTED are terminal; applications in those
// @Description  states cannot change status again.
// @Tags         applications
// @Produce      json
// @Param        id      path      int     true  "Application ID"
// @Param        status  path      string  true  "Target status"
// @Success      200     {object}  response.Response{data=domain.Application}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /applications/{id}/status/{status} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, c.Param("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Delete godoc
// @Summary      Delete an application
// @Description  Cascades to its interviews and hirings.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}
