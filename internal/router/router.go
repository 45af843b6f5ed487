package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/handlers"
	"github.com/serenity-space/serenity/internal/middleware"
)

func NewRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		users := api.Group("/users")
		{
			users.GET("", handlers.ListUsers)
			users.GET("/:id", handlers.GetUser)
			users.PUT("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", handlers.ListPosts)
			posts.GET("/latest", handlers.LatestPosts)
			posts.GET("/mostpopular", handlers.MostPopularPosts)
			posts.GET("/area/:areaId", handlers.PostsByArea)
			posts.GET("/area/:areaId/mostpopular", handlers.MostPopularPostsByArea)
			posts.GET("/full/:id", handlers.GetFullPost)
			posts.GET("/:id", handlers.GetPost)
			posts.POST("", middleware.AuthMiddleware(), handlers.CreatePost)
			posts.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdatePost)
			posts.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeletePost)
		}

		comments := api.Group("/comments")
		{
			comments.GET("", handlers.ListComments)
			comments.GET("/:postId", handlers.GetPostComments)
			comments.GET("/comment/:commentId", handlers.GetComment)
			comments.POST("", middleware.AuthMiddleware(), handlers.CreateComment)
			comments.PUT("/comment/:commentId", middleware.AuthMiddleware(), handlers.UpdateComment)
			comments.DELETE("/comment/:commentId", middleware.AuthMiddleware(), handlers.DeleteComment)
		}

		videos := api.Group("/videos")
		{
			videos.GET("", handlers.ListVideos)
			videos.GET("/area/:areaId", handlers.VideosByArea)
			videos.GET("/:id", handlers.GetVideo)
			videos.POST("", handlers.CreateVideo)
			videos.PUT("/:id", handlers.UpdateVideo)
			videos.DELETE("/:id", handlers.DeleteVideo)
		}

		areas := api.Group("/healthcareArea")
		{
			areas.GET("", handlers.ListAreas)
			areas.GET("/:id", handlers.GetArea)
			areas.POST("", handlers.CreateArea)
			areas.PUT("/:id", handlers.UpdateArea)
			areas.DELETE("/:id", handlers.DeleteArea)
		}

		contact := api.Group("/contactmessage")
		{
			contact.GET("", handlers.ListContactMessages)
			contact.GET("/user/:userId", handlers.ListContactMessagesByUser)
			contact.GET("/:id", handlers.GetContactMessage)
			contact.POST("", handlers.CreateContactMessage)
		}

		subscribe := api.Group("/subscribe", middleware.AuthMiddleware())
		{
			subscribe.GET("", handlers.ListSubscribers)
			subscribe.POST("", handlers.Subscribe)
			subscribe.DELETE("/:id", handlers.DeleteSubscriber)
		}

		api.POST("/uploads", middleware.AuthMiddleware(), handlers.UploadImage)
	}

	return r
}
