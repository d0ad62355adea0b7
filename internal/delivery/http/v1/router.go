package v1

import (
	"net/http"
	"time"

	"go-hiring-portal/config"
	"go-hiring-portal/internal/delivery/http/middleware"
	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/internal/policy"
	"go-hiring-portal/pkg/auth"
	"go-hiring-portal/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	InterviewUC   domain.InterviewUsecase
	HiringUC      domain.HiringUsecase
	DashboardUC   domain.DashboardUsecase
	Tokens        *auth.TokenService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Policy evaluation runs once per request; public routes skip auth.
	v1.Use(middleware.AuthMiddleware(deps.Tokens, policy.Routes))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	signinLimiter := middleware.SignInRateLimit(
		redis.Client(),
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)

	NewUserHandler(v1, deps.AuthUC, signinLimiter)
	NewVacancyHandler(v1, deps.VacancyUC)
	NewApplicationHandler(v1, deps.ApplicationUC)
	NewInterviewHandler(v1, deps.InterviewUC)
	NewHiringHandler(v1, deps.HiringUC)
	NewDashboardHandler(v1, deps.DashboardUC)

	return r
}
