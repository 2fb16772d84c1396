package routes

import (
	"github.com/cortylix/site-go/internal/api/handlers"
	"github.com/cortylix/site-go/internal/api/middleware"
	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/cortylix/site-go/docs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, database *gorm.DB) {
	// init
	repos := repository.NewRepositories(database)
	services := application.New(repos)
	h := handlers.New(services)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public marketing surface
	content := r.Group("/content")
	{
		content.GET("/services", h.Content.Services)
		content.GET("/testimonials", h.Content.Testimonials)
		content.GET("/stats", h.Content.Stats)
	}
	r.GET("/portfolio", h.Portfolio.ListProjects)
	r.POST("/contact", h.Contact.SubmitMessage)

	// identity
	r.POST("/auth/signup", h.Auth.SignUp)
	r.POST("/auth/signin", h.Auth.SignIn)
	r.POST("/auth/signout", h.Auth.SignOut)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("/my", h.Ticket.GetMyTickets)
			tickets.GET("", authMiddleware.Admin(), h.Ticket.GetAllTickets)
			tickets.PUT("/:id/status", authMiddleware.Admin(), h.Ticket.UpdateTicketStatus)
			tickets.PUT("/:id/notes", authMiddleware.Admin(), h.Ticket.UpdateTicketNotes)
		}

		portfolio := auth.Group("/portfolio")
		{
			portfolio.POST("", authMiddleware.Admin(), h.Portfolio.CreateProject)
			portfolio.PUT("/:id", authMiddleware.Admin(), h.Portfolio.UpdateProject)
			portfolio.DELETE("/:id", authMiddleware.Admin(), h.Portfolio.DeleteProject)
			portfolio.POST("/images", authMiddleware.Admin(), h.Portfolio.UploadImage)
		}

		contact := auth.Group("/contact")
		{
			contact.GET("", authMiddleware.Admin(), h.Contact.ListMessages)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
