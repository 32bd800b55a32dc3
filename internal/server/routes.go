// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/auth"
	"github.com/yana-hris/DevJobsAPI/internal/controller/admin"
	"github.com/yana-hris/DevJobsAPI/internal/controller/application"
	"github.com/yana-hris/DevJobsAPI/internal/controller/job"
	"github.com/yana-hris/DevJobsAPI/internal/controller/savedjob"
	"github.com/yana-hris/DevJobsAPI/internal/middleware"
	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
	"github.com/yana-hris/DevJobsAPI/internal/service"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	jobRepo := repository.NewJobRepository(s.DB.DB)
	userRepo := repository.NewUserRepository(s.DB.DB)

	jobController := job.NewJobController(service.NewJobService(jobRepo))
	applicationController := application.NewApplicationController(
		service.NewApplicationService(repository.NewApplicationRepository(s.DB.DB), jobRepo))
	savedJobController := savedjob.NewSavedJobController(
		service.NewSavedJobService(repository.NewSavedJobRepository(s.DB.DB), jobRepo))
	adminController := admin.NewAdminController(service.NewUserService(userRepo))

	lAuth := auth.NewLocalAuthHandler(userRepo, s.Tokens, s.AuthLog)
	logout := auth.NewLogoutController(s.Blacklist, s.AuthLog)

	limiter := middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader(), middleware.SizeLimit(middleware.DefaultMaxBodyBytes))

	r.GET("/health", s.healthHandler)

	registerJobRoutes(r.Group("/jobs"), jobController, limiter)

	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", limiter, lAuth.LocalLoginHandler)
			authRoute.POST("register", limiter, lAuth.LocalRegisterHandler)
		}

		registerJobRoutes(v1.Group("/jobs"), jobController, limiter)

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.Tokens, userRepo), middleware.JwtBlacklistCheck(s.Blacklist))
			needAuth.POST("auth/logout", logout.LogoutHandler)

			needEmployee := needAuth.Group("")
			{
				needEmployee.Use(middleware.CheckRole(model.RoleEmployee))
				needEmployee.POST("applications", limiter, applicationController.ApplicationHandler)
				needEmployee.GET("applications/me", applicationController.GetMyApplications)

				needEmployee.GET("saved-jobs", savedJobController.GetSavedJobs)
				needEmployee.POST("saved-jobs/:jobId", savedJobController.SaveJob)
				needEmployee.DELETE("saved-jobs/:jobId", savedJobController.UnsaveJob)
			}

			needEmployerAdmin := needAuth.Group("")
			{
				needEmployerAdmin.Use(middleware.CheckRole(model.RoleEmployer, model.RoleAdmin))
				needEmployerAdmin.GET("jobs/:id/applications", applicationController.GetJobApplications)
				needEmployerAdmin.PATCH("jobs/:id/applications/:userId", applicationController.UpdateApplicationStatus)
			}

			needAdmin := needAuth.Group("/admin")
			{
				needAdmin.Use(middleware.CheckRole(model.RoleAdmin))
				needAdmin.GET("users", adminController.GetUsers)
				needAdmin.DELETE("users/:id", adminController.DeleteUser)
			}
		}
	}

	return r
}

func registerJobRoutes(g *gin.RouterGroup, jc *job.JobController, limiter gin.HandlerFunc) {
	g.GET("", jc.GetJobs)
	g.GET("/:id", jc.GetJob)
	g.POST("", limiter, jc.CreateJob)
	g.PUT("/:id", limiter, jc.UpdateJob)
	g.DELETE("/:id", limiter, jc.DeleteJob)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	status := s.DB.Health(c.Request.Context())
	if !status.Up() {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
