package v1

import (
	"net/http"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HiringHandler struct {
	hiringUC domain.HiringUsecase
}

// NewHiringHandler registers hiring routes
func NewHiringHandler(r *gin.RouterGroup, hiringUC domain.HiringUsecase) {
	handler := &HiringHandler{hiringUC: hiringUC}

	hirings := r.Group("/hirings")
	{
		hirings.GET("", handler.GetAll)
		hirings.GET("/decision/:decision", handler.GetByDecision)
		hirings.GET("/application/:applicationId", handler.GetByApplication)
		hirings.GET("/:id", handler.GetByID)
		hirings.POST("", handler.Create)
		hirings.PUT("/:id", handler.Update)
		hirings.DELETE("/:id", handler.Delete)
	}
}

// HiringRequest is the create/update payload
type HiringRequest struct {
	ApplicationID   int64   `json:"application_id" binding:"required"`
	InterviewerName string  `json:"interviewer_name" binding:"required"`
	Decision        string  `json:"decision" binding:"required"`
	SalaryOffered   int64   `json:"salary_offered"`
	StartDate       string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	Notes           *string `json:"notes"`
}

func (req *HiringRequest) toInput() (*domain.HiringInput, error) {
	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	return &domain.HiringInput{
		ApplicationID:   req.ApplicationID,
		InterviewerName: req.InterviewerName,
		Decision:        req.Decision,
		SalaryOffered:   req.SalaryOffered,
		StartDate:       startDate,
		Notes:           req.Notes,
	}, nil
}

// Create godoc
// @Summary      Record a hiring decision
// @Description  SELECTED and REJECTED decisions also move the application to
// @Description  the matching terminal status.
// @Tags         hirings
// @Accept       json
// @Produce      json
// @Param        body  body      HiringRequest  true  "Decision data"
// @Success      201   {object}  response.Response{data=domain.Hiring}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /hirings [post]
// @Security     BearerAuth
func (h *HiringHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req HiringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	hiring, err := h.hiringUC.Create(c.Request.Context(), userID, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Hiring decision recorded", hiring)
}

// GetAll godoc
// @Summary      List all hiring decisions
// @Tags         hirings
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Hiring}
// @Router       /hirings [get]
// @Security     BearerAuth
func (h *HiringHandler) GetAll(c *gin.Context) {
	hirings, err := h.hiringUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hirings retrieved", hirings)
}

// GetByDecision godoc
// @Summary      List hiring records by decision
// @Tags         hirings
// @Produce      json
// @Param        decision  path      string  true  "Decision"
// @Success      200       {object}  response.Response{data=[]domain.Hiring}
// @Failure      400       {object}  response.Response
// @Router       /hirings/decision/{decision} [get]
// @Security     BearerAuth
func (h *HiringHandler) GetByDecision(c *gin.Context) {
	hirings, err := h.hiringUC.GetByDecision(c.Request.Context(), c.Param("decision"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hirings retrieved", hirings)
}

// GetByApplication godoc
// @Summary      Get the authoritative decision for an application
// @Description  When several decision rows exist, the most recent one wins.
// @Tags         hirings
// @Produce      json
// @Param        applicationId  path      int  true  "Application ID"
// @Success      200            {object}  response.Response{data=domain.Hiring}
// @Failure      404            {object}  response.Response
// @Router       /hirings/application/{applicationId} [get]
// @Security     BearerAuth
func (h *HiringHandler) GetByApplication(c *gin.Context) {
	applicationID, err := paramID(c, "applicationId")
	if err != nil {
		c.Error(err)
		return
	}

	hiring, err := h.hiringUC.GetByApplication(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hiring retrieved", hiring)
}

// GetByID godoc
// @Summary      Get one hiring record
// @Tags         hirings
// @Produce      json
// @Param        id   path      int  true  "Hiring ID"
// @Success      200  {object}  response.Response{data=domain.Hiring}
// @Failure      404  {object}  response.Response
// @Router       /hirings/{id} [get]
// @Security     BearerAuth
func (h *HiringHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	hiring, err := h.hiringUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hiring retrieved", hiring)
}

// Update godoc
// @Summary      Update a hiring record
// @Tags         hirings
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Hiring ID"
// @Param        body  body      HiringRequest  true  "Decision data"
// @Success      200   {object}  response.Response{data=domain.Hiring}
// @Failure      404   {object}  response.Response
// @Router       /hirings/{id} [put]
// @Security     BearerAuth
func (h *HiringHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req HiringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	hiring, err := h.hiringUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hiring updated", hiring)
}

// Delete godoc
// @Summary      Delete a hiring record
// @Tags         hirings
// @Produce      json
// @Param        id   path      int  true  "Hiring ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /hirings/{id} [delete]
// @Security     BearerAuth
func (h *HiringHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.hiringUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hiring deleted", nil)
}
