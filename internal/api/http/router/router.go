package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/diaryof/diary-server/internal/api/http/handler"
	"github.com/diaryof/diary-server/internal/api/http/middleware"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/permission"
)

// bodyLimit leaves room for a maximum-size profile picture plus form overhead.
const bodyLimit = 6 * 1024 * 1024

// Options tunes the cross-cutting middleware.
type Options struct {
	CORSOrigin string
	// RateLimitMax caps register, login and guest requests per IP and window.
	RateLimitMax int
	// OTPRateLimitMax caps each code flow (registration, password reset) per IP and window.
	OTPRateLimitMax int
	RateLimitWindow time.Duration
}

// Services bundles the application services served over HTTP.
type Services struct {
	Identity handler.IdentityService
	Users    handler.UserService
	Days     handler.DayService
	Tasks    handler.TaskService
	Tokens   middleware.TokenService
	States   handler.StateTokens
	OAuth    handler.OAuthProvider
}

// Router builds the HTTP API.
type Router struct {
	services       Services
	policy         middleware.PermissionChecker
	contextManager model.ContextManager
	opts           Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	policy middleware.PermissionChecker,
	contextManager model.ContextManager,
	opts Options,
	logger *logger.Logger,
) *Router {
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	if opts.RateLimitMax <= 0 {
		opts.RateLimitMax = 5
	}
	if opts.OTPRateLimitMax <= 0 {
		opts.OTPRateLimitMax = 10
	}
	if opts.RateLimitWindow <= 0 {
		opts.RateLimitWindow = 15 * time.Minute
	}
	return &Router{
		services:       services,
		policy:         policy,
		contextManager: contextManager,
		opts:           opts,
		logger:         logger,
	}
}

// Register wires middleware and routes into a new fiber app.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "diary-server",
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler(r.logger),
	})

	app.Use(middleware.NewLogging(r.logger).Handle)
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     r.opts.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: r.opts.CORSOrigin != "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is up and running")
	})

	api := app.Group("/api/v1")
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger).Handle
	authorize := middleware.NewAuthorize(r.policy, r.contextManager, r.logger)

	r.registerAuthRoutes(api.Group("/auth"), authenticate, authorize)
	r.registerUserRoutes(api.Group("/user", authenticate))
	r.registerDayRoutes(api.Group("/days", authenticate), authorize)
	r.registerTaskRoutes(api.Group("/tasks", authenticate), authorize)

	return app
}

// authLimiter counts requests per IP in its own bucket.
func (r *Router) authLimiter(bucket string, max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: r.opts.RateLimitWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return bucket + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many login attempts, please try again later.",
			})
		},
	})
}

func (r *Router) registerAuthRoutes(group fiber.Router, authenticate fiber.Handler, authorize *middleware.Authorize) {
	h := handler.NewAuth(r.services.Identity, r.services.OAuth, r.services.States, r.logger)
	credentials := r.authLimiter("credentials", r.opts.RateLimitMax)
	registration := r.authLimiter("registration", r.opts.OTPRateLimitMax)
	reset := r.authLimiter("reset", r.opts.OTPRateLimitMax)

	group.Post("/register", credentials, h.Register)
	group.Post("/login", credentials, h.Login)
	group.Post("/guest", credentials, h.Guest)
	group.Post("/verify-otp", registration, h.VerifyOTP)
	group.Post("/resend-otp", registration, h.ResendOTP)
	group.Post("/forgot-password", reset, h.ForgotPassword)
	group.Post("/verify-password-reset-otp", reset, h.VerifyPasswordResetOTP)
	group.Post("/reset-password", reset, h.ResetPassword)

	group.Get("/google", h.GoogleRedirect)
	group.Get("/google/callback", h.GoogleCallback)

	group.Get("/private", authenticate, authorize.RequireRole(model.RoleUser, model.RoleAdmin), h.Private)
	group.Get("/content", authenticate, authorize.RequirePermission(permission.ReadContent), h.Content)
	group.Get("/users", authenticate, authorize.RequirePermission(permission.ManageUsers), h.Users)
}

func (r *Router) registerUserRoutes(group fiber.Router) {
	h := handler.NewUser(r.services.Users, r.contextManager, r.logger)

	group.Get("/profile", h.Profile)
	group.Put("/updateProfile", h.UpdateProfile)
}

func (r *Router) registerDayRoutes(group fiber.Router, authorize *middleware.Authorize) {
	h := handler.NewDay(r.services.Days, r.contextManager, r.logger)
	read := authorize.RequirePermission(permission.ReadContent)
	write := authorize.RequirePermission(permission.WriteContent)

	group.Get("/", read, h.List)
	group.Post("/", write, h.Create)
	group.Get("/:id", read, h.Get)
}

func (r *Router) registerTaskRoutes(group fiber.Router, authorize *middleware.Authorize) {
	h := handler.NewTask(r.services.Tasks, r.contextManager, r.logger)
	read := authorize.RequirePermission(permission.ReadContent)
	write := authorize.RequirePermission(permission.WriteContent)

	group.Get("/", read, h.List)
	group.Post("/", write, h.Create)
	group.Put("/:id", write, h.Update)
	group.Delete("/:id", write, h.Delete)
}
