package v1

import (
	"net/http"
	"time"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("", handler.GetAll)
		interviews.GET("/status/:status", handler.GetByStatus)
		interviews.GET("/application/:applicationId", handler.GetByApplication)
		interviews.GET("/:id", handler.GetByID)
		interviews.POST("", handler.Schedule)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
	}
}

// ScheduleInterviewRequest is the create payload
type ScheduleInterviewRequest struct {
	ApplicationID   int64   `json:"application_id" binding:"required"`
	InterviewerName string  `json:"interviewer_name" binding:"required"`
	ScheduledAt     string  `json:"scheduled_at" binding:"required"` // RFC 3339
	Type            string  `json:"type" binding:"required"`
	MeetURL         *string `json:"meet_url"`
}

// UpdateInterviewRequest carries partial interview changes
type UpdateInterviewRequest struct {
	InterviewerName *string `json:"interviewer_name"`
	ScheduledAt     *string `json:"scheduled_at"` // RFC 3339
	Type            *string `json:"type"`
	Status          *string `json:"status"`
	Feedback        *string `json:"feedback"`
	MeetURL         *string `json:"meet_url"`
}

// Schedule godoc
// @Summary      Schedule an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      ScheduleInterviewRequest  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.Error(apperror.BadRequest("scheduled_at must be RFC 3339"))
		return
	}

	iv, err := h.interviewUC.Schedule(c.Request.Context(), userID, &domain.ScheduleInterviewInput{
		ApplicationID:   req.ApplicationID,
		InterviewerName: req.InterviewerName,
		ScheduledAt:     scheduledAt,
		Type:            req.Type,
		MeetURL:         req.MeetURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", iv)
}

// GetAll godoc
// @Summary      List all interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Interview}
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetAll(c *gin.Context) {
	interviews, err := h.interviewUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// GetByStatus godoc
// @Summary      List interviews by status
// @Tags         interviews
// @Produce      json
// @Param        status  path      string  true  "Interview status"
// @Success      200     {object}  response.Response{data=[]domain.Interview}
// @Failure      400     {object}  response.Response
// @Router       /interviews/status/{status} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetByStatus(c *gin.Context) {
	interviews, err := h.interviewUC.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// GetByApplication godoc
// @Summary      List interviews for an application
// @Tags         interviews
// @Produce      json
// @Param        applicationId  path      int  true  "Application ID"
// @Success      200            {object}  response.Response{data=[]domain.Interview}
// @Failure      404            {object}  response.Response
// @Router       /interviews/application/{applicationId} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetByApplication(c *gin.Context) {
	applicationID, err := paramID(c, "applicationId")
	if err != nil {
		c.Error(err)
		return
	}

	interviews, err := h.interviewUC.GetByApplication(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// GetByID godoc
// @Summary      Get one interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response{data=domain.Interview}
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	iv, err := h.interviewUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview retrieved", iv)
}

// Update godoc
// @Summary      Update an interview
// @Description  Changing the schedule of a SCHEDULED interview without an
// @Description  explicit status marks it RESCHEDULED.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Interview ID"
// @Param        body  body      UpdateInterviewRequest  true  "Changes"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in := &domain.UpdateInterviewInput{
		InterviewerName: req.InterviewerName,
		Type:            req.Type,
		Status:          req.Status,
		Feedback:        req.Feedback,
		MeetURL:         req.MeetURL,
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			c.Error(apperror.BadRequest("scheduled_at must be RFC 3339"))
			return
		}
		in.ScheduledAt = &scheduledAt
	}

	iv, err := h.interviewUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Delete godoc
// @Summary      Delete an interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.interviewUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview deleted", nil)
}
