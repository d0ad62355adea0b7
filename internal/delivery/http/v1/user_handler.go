package v1

import (
	"net/http"
	"time"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

// NewUserHandler registers user and auth routes. The signin route carries
// an extra rate-limit middleware supplied by the router.
func NewUserHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, signinLimiter gin.HandlerFunc) {
	handler := &UserHandler{authUC: authUC}

	users := r.Group("/users")
	{
		users.POST("/signup", handler.SignUp)
		users.POST("/signin", signinLimiter, handler.SignIn)
		users.POST("/logout", handler.Logout)
		users.GET("/profile", handler.GetProfile)
		users.PUT("/profile", handler.UpdateProfile)
		users.GET("/candidates", handler.ListCandidates)
		users.GET("/:userId", handler.GetUserByID)
		users.PUT("/:userId", handler.UpdateUser)
		users.DELETE("/:userId", handler.DeleteUser)
		users.PUT("/:userId/change-password", handler.ChangePassword)
	}
}

// SignUpRequest is the signup payload
type SignUpRequest struct {
	Email          string  `json:"email" binding:"required"`
	Password       string  `json:"password" binding:"required"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	PhoneNumber    string  `json:"phone_number" binding:"required"`
	Role           string  `json:"role" binding:"required"`
	DepartmentName string  `json:"department_name"`
	Skills         *string `json:"skills"`
	DateOfBirth    *string `json:"date_of_birth"` // YYYY-MM-DD
	Address        *string `json:"address"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Country        *string `json:"country"`
	ZipCode        *string `json:"zip_code"`
	Summary        *string `json:"summary"`
}

func (req *SignUpRequest) toInput() (*domain.SignUpInput, error) {
	in := &domain.SignUpInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Role:           req.Role,
		DepartmentName: req.DepartmentName,
		Skills:         req.Skills,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		ZipCode:        req.ZipCode,
		Summary:        req.Summary,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperror.BadRequest("date_of_birth must be YYYY-MM-DD")
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}

// SignUp godoc
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "Signup data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /users/signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.SignUp(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", user)
}

// SignInRequest is the signin payload
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carries the issued token together with the account.
type SignInResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// SignIn godoc
// @Summary      Sign in and receive a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=SignInResponse}
// @Failure      401   {object}  response.Response
// @Router       /users/signin [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signed in successfully", SignInResponse{Token: token, User: user})
}

// Logout godoc
// @Summary      Log out
// @Description  Tokens are stateless; the server keeps no revocation list. The
// @Description  issued token remains valid until its natural expiry, so clients
// @Description  must discard it locally.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/logout [post]
// @Security     BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out. Discard the token client-side; it stays valid until expiry.", nil)
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", user)
}

// UpdateProfileRequest is the profile update payload
type UpdateProfileRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Skills      *string `json:"skills"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	ZipCode     *string `json:"zip_code"`
	Summary     *string `json:"summary"`
}

func (req *UpdateProfileRequest) toInput() (*domain.UpdateProfileInput, error) {
	in := &domain.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
		Summary:     req.Summary,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperror.BadRequest("date_of_birth must be YYYY-MM-DD")
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}

// ListCandidates godoc
// @Summary      List candidate accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      403  {object}  response.Response
// @Router       /users/candidates [get]
// @Security     BearerAuth
func (h *UserHandler) ListCandidates(c *gin.Context) {
	users, err := h.authUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", users)
}

// GetUserByID godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=domain.User}
// @Failure      404     {object}  response.Response
// @Router       /users/{userId} [get]
// @Security     BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := paramID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// UpdateUser godoc
// @Summary      Update a user by id
// @Description  Callers may only update their own account.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      int                   true  "User ID"
// @Param        body    body      UpdateProfileRequest  true  "Profile data"
// @Success      200     {object}  response.Response{data=domain.User}
// @Failure      403     {object}  response.Response
// @Router       /users/{userId} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := paramID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}
	if id != c.GetInt64(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only update your own account"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// DeleteUser godoc
// @Summary      Delete a user account
// @Description  Removes the account and cascades to its applications,
// @Description  interviews and hirings. Callers may only delete themselves.
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /users/{userId} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := paramID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}
	if id != c.GetInt64(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only delete your own account"))
		return
	}

	if err := h.authUC.DeleteUser(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

// ChangePasswordRequest is the change-password payload
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      int                    true  "User ID"
// @Param        body    body      ChangePasswordRequest  true  "Passwords"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Router       /users/{userId}/change-password [put]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, err := paramID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}
	if id != c.GetInt64(string(domain.KeyUserID)) {
		c.Error(apperror.Forbidden("You can only change your own password"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", nil)
}
