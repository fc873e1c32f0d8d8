package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/attendance-api/internal/middleware"
	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/internal/service"
	"github.com/noah-isme/attendance-api/pkg/config"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
	"github.com/noah-isme/attendance-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/attendance-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/attendance-api/pkg/middleware/requestid"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Env            string
	AllowedOrigins []string
	Logger         *zap.Logger
	Tokens         middleware.TokenVerifier
	Auth           authService
	Classes        classService
	Students       studentService
	Metrics        *service.MetricsService
	Store          Pinger
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(deps.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.ErrorHandler(log))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(appErrors.Clone(appErrors.ErrNotFound, "Route not found"))
	})

	ops := NewMetricsHandler(deps.Metrics, deps.Store)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if deps.Metrics != nil {
		r.GET("/metrics", ops.Prometheus)
	}
	if deps.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(deps.Auth)
	auth := r.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.Authenticate(deps.Tokens), authHandler.Me)

	teacherOnly := middleware.Authenticate(deps.Tokens, models.RoleTeacher)

	classHandler := NewClassHandler(deps.Classes)
	classes := r.Group("/class", teacherOnly)
	classes.POST("", classHandler.Create)
	classes.POST("/:id/add-student", classHandler.AddStudent)
	classes.GET("/:id", classHandler.Get)

	studentHandler := NewStudentHandler(deps.Students)
	r.GET("/students", teacherOnly, studentHandler.List)

	return r
}
