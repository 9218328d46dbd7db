package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/auth"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Posts      *PostHandler
	Categories *CategoryHandler
	Tags       *TagHandler
	Comments   *CommentHandler
}

// SetupRoutes registers all routes on the router. Public reads stay
// open; every mutation sits behind the JWT middleware, which resolves
// the caller's identity once and stores it in the request context.
func SetupRoutes(router *gin.Engine, h Handlers, tokens *auth.TokenManager) {
	router.GET("/health", h.Health.HealthCheck)

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/refresh-token", h.Auth.RefreshToken)
		// Logout uses the optional middleware: an anonymous call is a
		// soft success, not a 401.
		authRoutes.POST("/logout", auth.OptionalAuthMiddleware(tokens), h.Auth.Logout)
	}

	// Public read endpoints.
	v1.GET("/posts", h.Posts.ListPosts)
	v1.GET("/posts/featured", h.Posts.GetFeatured)
	v1.GET("/posts/trending", h.Posts.GetTrending)
	v1.GET("/posts/:id", h.Posts.GetPost)
	v1.GET("/categories", h.Categories.ListCategories)
	v1.GET("/tags", h.Tags.ListTags)
	v1.GET("/posts/:id/comments", h.Comments.ListComments)

	// Authenticated endpoints.
	protected := v1.Group("/")
	protected.Use(auth.JwtAuthMiddleware(tokens))
	{
		protected.GET("profile", h.Auth.Profile)
		protected.GET("posts/drafts", h.Posts.GetDrafts)
		protected.POST("posts", h.Posts.CreatePost)
		protected.PUT("posts/:id", h.Posts.UpdatePost)
		protected.DELETE("posts/:id", h.Posts.DeletePost)
		protected.POST("categories", h.Categories.CreateCategory)
		protected.DELETE("categories/:id", h.Categories.DeleteCategory)
		protected.POST("tags", h.Tags.CreateTags)
		protected.DELETE("tags/:id", h.Tags.DeleteTag)
		protected.POST("posts/:id/comments", h.Comments.CreateComment)
		protected.DELETE("comments/:commentId", h.Comments.DeleteComment)
	}
}
