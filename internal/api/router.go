package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/inkwell/blog-api/docs"
	"github.com/inkwell/blog-api/internal/api/handler"
	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/core/service"
	"github.com/inkwell/blog-api/internal/core/token"
	mongodb "github.com/inkwell/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/blog-api/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The request gate runs globally ahead of the access policy, so every handler
// sees either a bound principal or an anonymous request that the policy has
// already admitted.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	resolver := service.NewIdentityResolver(accountRepo)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	authService := service.NewAuthService(accountRepo, issuer, throttle, audit, cfg.SignupRole, log)
	postService := service.NewPostService(postRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	// --- Request gate + access policy ---
	e.Use(middleware.Authenticate(issuer, resolver))
	e.Use(middleware.DefaultPolicy().Middleware())

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signin", authHandler.Login) // alias kept for older clients
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/register", authHandler.Signup)

	// --- Post routes ---
	posts := e.Group("/api/v1/posts")
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Comment routes (nested under posts) ---
	comments := e.Group("/api/v1/posts/:postId/comments")
	comments.POST("", commentHandler.Create)
	comments.GET("", commentHandler.List)
	comments.GET("/:commentId", commentHandler.Get)
	comments.PUT("/:commentId", commentHandler.Update)
	comments.DELETE("/:commentId", commentHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability + docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
