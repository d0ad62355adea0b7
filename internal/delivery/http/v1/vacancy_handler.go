package v1

import (
	"net/http"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

// NewVacancyHandler registers vacancy routes. The public listing routes and
// the HR management routes share the group; the policy table decides access.
func NewVacancyHandler(r *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := r.Group("/vacancies")
	{
		vacancies.GET("", handler.ListActive)
		vacancies.GET("/search", handler.Search)
		vacancies.GET("/all", handler.ListAll)
		vacancies.GET("/status/:status", handler.ListByStatus)
		vacancies.GET("/:id", handler.GetByID)
		vacancies.POST("", handler.Create)
		vacancies.PUT("/:id", handler.Update)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

// VacancyRequest is the create/update payload
type VacancyRequest struct {
	Title               string  `json:"title" binding:"required"`
	Description         *string `json:"description"`
	Department          string  `json:"department" binding:"required"`
	Location            string  `json:"location" binding:"required"`
	EmploymentType      string  `json:"employment_type" binding:"required"`
	SalaryMin           int64   `json:"salary_min"`
	SalaryMax           int64   `json:"salary_max"`
	Responsibilities    *string `json:"responsibilities"`
	Status              string  `json:"status" binding:"required"`
	ApplicationDeadline string  `json:"application_deadline" binding:"required"` // YYYY-MM-DD
	RequiredEducation   *string `json:"required_education"`
	RequiredExperience  *string `json:"required_experience"`
	NumberOfVacancies   int     `json:"number_of_vacancies"`
	ShiftDetails        *string `json:"shift_details"`
}

func (req *VacancyRequest) toInput() (*domain.VacancyInput, error) {
	deadline, err := parseDate(req.ApplicationDeadline, "application_deadline")
	if err != nil {
		return nil, err
	}
	return &domain.VacancyInput{
		Title:               req.Title,
		Description:         req.Description,
		Department:          req.Department,
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Responsibilities:    req.Responsibilities,
		Status:              req.Status,
		ApplicationDeadline: deadline,
		RequiredEducation:   req.RequiredEducation,
		RequiredExperience:  req.RequiredExperience,
		NumberOfVacancies:   req.NumberOfVacancies,
		ShiftDetails:        req.ShiftDetails,
	}, nil
}

// ListActive godoc
// @Summary      List open vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacancy}
// @Router       /vacancies [get]
func (h *VacancyHandler) ListActive(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", vacancies)
}

// Search godoc
// @Summary      Search open vacancies by keyword
// @Tags         vacancies
// @Produce      json
// @Param        keyword  query     string  true  "Search keyword"
// @Success      200      {object}  response.Response{data=[]domain.Vacancy}
// @Failure      400      {object}  response.Response
// @Router       /vacancies/search [get]
func (h *VacancyHandler) Search(c *gin.Context) {
	vacancies, err := h.vacancyUC.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", vacancies)
}

// ListAll godoc
// @Summary      List every vacancy regardless of status
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacancy}
// @Failure      403  {object}  response.Response
// @Router       /vacancies/all [get]
// @Security     BearerAuth
func (h *VacancyHandler) ListAll(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", vacancies)
}

// ListByStatus godoc
// @Summary      List vacancies by status
// @Tags         vacancies
// @Produce      json
// @Param        status  path      string  true  "Vacancy status"
// @Success      200     {object}  response.Response{data=[]domain.Vacancy}
// @Failure      400     {object}  response.Response
// @Router       /vacancies/status/{status} [get]
// @Security     BearerAuth
func (h *VacancyHandler) ListByStatus(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", vacancies)
}

// GetByID godoc
// @Summary      Get one vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.Vacancy}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	vacancy, err := h.vacancyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy retrieved", vacancy)
}

// Create godoc
// @Summary      Post a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        body  body      VacancyRequest  true  "Vacancy data"
// @Success      201   {object}  response.Response{data=domain.Vacancy}
// @Failure      400   {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	vacancy, err := h.vacancyUC.Create(c.Request.Context(), userID, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", vacancy)
}

// Update godoc
// @Summary      Update a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Vacancy ID"
// @Param        body  body      VacancyRequest  true  "Vacancy data"
// @Success      200   {object}  response.Response{data=domain.Vacancy}
// @Failure      404   {object}  response.Response
// @Router       /vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	vacancy, err := h.vacancyUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", vacancy)
}

// Delete godoc
// @Summary      Delete a vacancy
// @Description  Cascades to applications, interviews and hirings.
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [delete]
// @Security     BearerAuth
func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.vacancyUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}
