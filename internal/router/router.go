package router

import (
	"github.com/gin-gonic/gin"

	"aduanagw/internal/domain"
	"aduanagw/internal/handler"
	"aduanagw/internal/middleware"
	"aduanagw/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	voyageH *handler.VoyageHandler,
	validationH *handler.ValidationHandler,
	submissionH *handler.SubmissionHandler,
	attachmentH *handler.AttachmentHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management (company-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:userID", userH.Get)
	users.PATCH("/:userID", middleware.RequireRole(domain.RoleAdmin), userH.Update)

	// Voyage routes
	voyages := protected.Group("/voyages")
	voyages.GET("", voyageH.List)
	voyages.GET("/:voyageID", voyageH.Get)
	voyages.POST("/:voyageID/validate", validationH.Validate)
	voyages.GET("/:voyageID/submissions", submissionH.ListByVoyage)

	// Attachment routes
	voyages.POST("/:voyageID/attachments", attachmentH.Upload)
	voyages.GET("/:voyageID/attachments", attachmentH.List)
	voyages.GET("/:voyageID/attachments/:attachmentID/download", attachmentH.DownloadURL)
	voyages.DELETE("/:voyageID/attachments/:attachmentID", attachmentH.Delete)

	// Submission routes
	submissions := protected.Group("/submissions")
	submissions.POST("", submissionH.Submit)
	submissions.GET("/:txID", submissionH.Get)
	submissions.POST("/:txID/outcome", submissionH.RecordOutcome)
	submissions.POST("/:txID/retry", submissionH.Retry)

	return r
}
