package router

import (
	"petit/internal/handlers"
	"petit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	likeHandler := handlers.NewLikeHandler()
	articleHandler := handlers.NewArticleHandler()
	tagHandler := handlers.NewTagHandler()
	userHandler := handlers.NewUserHandler()
	notificationHandler := handlers.NewNotificationHandler()
	uploadHandler := handlers.NewUploadHandler()
	metaHandler := handlers.NewMetaHandler()
	streamHandler := handlers.NewStreamHandler()

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/google", authHandler.GoogleLogin)
	api.GET("/auth/google/callback", authHandler.GoogleCallback)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/:pid", postHandler.Detail)
	api.GET("/posts/:pid/comments", commentHandler.List)
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/:aid", articleHandler.Detail)
	api.GET("/tags/top", tagHandler.Top)
	api.GET("/users/:id", userHandler.Profile)
	api.GET("/categories", metaHandler.Categories)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:pid", postHandler.Update)
		authorized.DELETE("/posts/:pid", postHandler.Delete)

		authorized.POST("/posts/:pid/comments", commentHandler.Create)
		authorized.PUT("/comments/:cid", commentHandler.Update)
		authorized.DELETE("/comments/:cid", commentHandler.Delete)

		authorized.POST("/like/:type/:id", likeHandler.Toggle)

		authorized.POST("/articles", articleHandler.Create)
		authorized.PUT("/articles/:aid", articleHandler.Update)
		authorized.DELETE("/articles/:aid", articleHandler.Delete)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)

		authorized.PUT("/me", userHandler.UpdateSettings)
		authorized.GET("/me/emojis", userHandler.AvatarEmojis)

		authorized.POST("/upload/images", uploadHandler.Images)
	}

	// Live snapshots over websockets
	ws := r.Group("/ws")
	{
		ws.GET("/posts", streamHandler.PostFeed)
		ws.GET("/posts/:pid", streamHandler.PostDetail)
		ws.GET("/posts/:pid/comments", streamHandler.Comments)
		ws.GET("/articles", streamHandler.ArticleFeed)
	}
}
