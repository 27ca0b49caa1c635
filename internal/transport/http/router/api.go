package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-blog-api/internal/domain"
	"go-blog-api/internal/transport/http/handler"
	mdw "go-blog-api/internal/transport/http/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	Users *handler.UserHandler
	Posts *handler.PostHandler
}

// NewAPIEngine wires the middleware chain and the route table. Role
// gates are route-scoped: /users is admin-only, /posts admits admin and
// member.
func NewAPIEngine(l *zap.Logger, verifier mdw.TokenVerifier, h Handlers) *gin.Engine {
	r := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	r.Use(
		mdw.RequestID(),
		cors.New(corsCfg),
		ginzap.Ginzap(l, time.RFC3339, true),
		mdw.Metrics(),
		mdw.Errors(l),
		mdw.Recovery(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authn := mdw.Authenticate(verifier)

	// tighter per-IP budget on credential endpoints
	auth := r.Group("/auth", mdw.RateLimitPerIP(5, 10))
	{
		auth.POST("/sign-up", h.Auth.SignUp)
		auth.POST("/sign-in", h.Auth.SignIn)
		auth.POST("/verify-password", authn, h.Auth.VerifyPassword)
		auth.GET("/me", authn, h.Auth.Me)
	}

	users := r.Group("/users", authn, mdw.RequireRoles(domain.RoleAdmin))
	{
		users.POST("", h.Users.Create)
		users.GET("", h.Users.GetByQuery)
		users.GET("/:userId", h.Users.GetByID)
		users.PUT("/:userId", h.Users.UpdateByID)
		users.DELETE("/:userId", h.Users.DeleteByID)
	}

	posts := r.Group("/posts", authn, mdw.RequireRoles(domain.RoleAdmin, domain.RoleMember))
	{
		posts.POST("", h.Posts.Create)
		posts.GET("", h.Posts.GetByQuery)
		posts.GET("/:postId", h.Posts.GetByID)
		posts.PUT("/:postId", h.Posts.UpdateByID)
		posts.DELETE("/:postId", h.Posts.DeleteByID)

		posts.POST("/:postId/comments", h.Posts.CreateComment)
		posts.GET("/:postId/comments", h.Posts.GetCommentsByQuery)
		posts.GET("/:postId/comments/:commentId", h.Posts.GetCommentByID)
		posts.PUT("/:postId/comments/:commentId", h.Posts.UpdateCommentByID)
		posts.DELETE("/:postId/comments/:commentId", h.Posts.DeleteCommentByID)
	}

	return r
}
