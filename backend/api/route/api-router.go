package route

import (
	"bulletin-board/backend/api/handler"
	"bulletin-board/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	{
		// Authentication routes
		authRoutes := apiRouter.Group("/auth")
		{
			authRoutes.POST("/login", handler.Login)
			authRoutes.GET("/logout", handler.Logout)
			authRoutes.GET("/status", handler.AuthStatus)
		}

		// Message board routes
		messageRoute := apiRouter.Group("/messages")
		{
			// Public endpoints (read-only)
			messageRoute.GET("", handler.GetAllMessages)
			messageRoute.GET("/stats", handler.GetMessageStats)
			messageRoute.GET("/type/:type", handler.GetMessagesByType)
			messageRoute.GET("/:id", handler.GetMessage)

			// Admin-only endpoints (write operations)
			adminMessageRoute := messageRoute.Group("")
			adminMessageRoute.Use(middleware.AdminAuth())
			{
				adminMessageRoute.POST("", handler.CreateMessage)
				adminMessageRoute.PUT("/:id", handler.UpdateMessage)
				adminMessageRoute.DELETE("/:id", handler.DeleteMessage)
			}
		}

		// Calendar routes
		eventRoute := apiRouter.Group("/events")
		{
			// Public endpoints (read-only)
			eventRoute.GET("", handler.GetAllEvents)
			eventRoute.GET("/stats", handler.GetEventStats)
			eventRoute.GET("/slides", handler.GetSlides)
			eventRoute.GET("/category/:category", handler.GetEventsByCategory)
			eventRoute.GET("/:id", handler.GetEvent)

			// Admin-only endpoints (write operations)
			adminEventRoute := eventRoute.Group("")
			adminEventRoute.Use(middleware.AdminAuth())
			{
				adminEventRoute.POST("", handler.CreateEvent)
				adminEventRoute.PUT("/:id", handler.UpdateEvent)
				adminEventRoute.DELETE("/:id", handler.DeleteEvent)
				adminEventRoute.DELETE("/:id/images/:imageId", handler.DeleteEventImage)
			}
		}
	}
}
