package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mesconnect/backend/internal/app/controllers"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	friendController *controllers.FriendController,
	messageController *controllers.MessageController,
	groupController *controllers.GroupController,
	confessionController *controllers.ConfessionController,
	eventController *controllers.EventController,
	announcementController *controllers.AnnouncementController,
	contributionController *controllers.ContributionController,
	jobController *controllers.JobController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// User profile and directory
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMe)
			users.PUT("/me", userController.UpdateMe)
			users.GET("/search", userController.Search)
			users.GET("/:id", userController.GetByID)
		}

		// Friend graph
		friends := authenticated.Group("/friends")
		{
			friends.GET("", friendController.List)
			friends.POST("/requests", friendController.SendRequest)
			friends.GET("/requests", friendController.ListRequests)
			friends.POST("/requests/:id/accept", friendController.AcceptRequest)
			friends.POST("/requests/:id/reject", friendController.RejectRequest)
			friends.DELETE("/:id", friendController.Remove)
			friends.POST("/:id/block", friendController.Block)
		}

		// Direct messaging
		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.Send)
			messages.GET("", messageController.ListConversations)
			messages.GET("/unread", messageController.UnreadCount)
			messages.GET("/:userId", messageController.GetThread)
		}

		// Groups and group chat
		groups := authenticated.Group("/groups")
		{
			groups.POST("", groupController.Create)
			groups.GET("", groupController.List)
			groups.GET("/:id", groupController.GetByID)
			groups.POST("/:id/join", groupController.Join)
			groups.POST("/:id/leave", groupController.Leave)
			groups.GET("/:id/members", groupController.ListMembers)
			groups.POST("/:id/messages", groupController.PostMessage)
			groups.GET("/:id/messages", groupController.ListMessages)
		}

		// Confessions
		confessions := authenticated.Group("/confessions")
		{
			confessions.POST("", confessionController.Submit)
			confessions.GET("", confessionController.List)
			confessions.POST("/:id/like", confessionController.ToggleLike)

			confessionsAdmin := confessions.Group("")
			confessionsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				confessionsAdmin.GET("/pending", confessionController.ListPending)
				confessionsAdmin.PUT("/:id/moderate", confessionController.Moderate)
			}
		}

		// Events
		events := authenticated.Group("/events")
		{
			events.POST("", eventController.Create)
			events.GET("", eventController.List)
			events.GET("/:id", eventController.GetByID)
			events.POST("/:id/register", eventController.Register)
			events.DELETE("/:id/register", eventController.CancelRegistration)
		}

		// Announcements
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.List)

			announcementsAdmin := announcements.Group("")
			announcementsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				announcementsAdmin.POST("", announcementController.Create)
				announcementsAdmin.DELETE("/:id", announcementController.Deactivate)
			}
		}

		// Alumni contributions
		contributions := authenticated.Group("/contributions")
		{
			contributions.POST("", contributionController.Create)
			contributions.GET("", contributionController.List)
			contributions.GET("/mine", contributionController.ListMine)

			contributionsAdmin := contributions.Group("")
			contributionsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				contributionsAdmin.PUT("/:id/status", contributionController.UpdateStatus)
			}
		}

		// Job postings and applications
		jobs := authenticated.Group("/jobs")
		{
			jobs.POST("", jobController.Create)
			jobs.GET("", jobController.List)
			jobs.PUT("/applications/:id/status", jobController.UpdateApplicationStatus)
			jobs.GET("/:id", jobController.GetByID)
			jobs.POST("/:id/apply", jobController.Apply)
			jobs.GET("/:id/applications", jobController.ListApplications)
			jobs.DELETE("/:id", jobController.Deactivate)
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.POST("/read-all", notificationController.MarkAllRead)
			notifications.POST("/:id/read", notificationController.MarkRead)
		}

		// Admin dashboard
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/stats", userController.Stats)
			admin.DELETE("/users/:id", userController.Deactivate)
		}
	}
}
