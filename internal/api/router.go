package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/coursehub/catalog-api/internal/api/handler"
	"github.com/coursehub/catalog-api/internal/api/middleware"
	"github.com/coursehub/catalog-api/internal/core/ports"
	_ "github.com/coursehub/catalog-api/internal/docs"
)

// Deps is everything the HTTP layer needs. Services are built by the caller.
type Deps struct {
	Logger          zerolog.Logger
	AuthService     ports.AuthService
	TokenVerifier   ports.TokenVerifier
	CourseService   ports.CourseService
	ScheduleService ports.ScheduleService

	// ReadinessChecks are pinged by /health/ready. Empty means always ready.
	ReadinessChecks map[string]handler.DependencyCheck
	// LoginRateLimit is login attempts per second per client IP. Zero disables it.
	LoginRateLimit float64
	// StaticDir is served at / when set.
	StaticDir string
}

// routeRegistrar is satisfied by both *echo.Echo and *echo.Group.
type routeRegistrar interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	registry := prometheus.NewRegistry()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.ReadinessChecks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes, mounted at the root and under /api ---
	routes := apiRoutes{
		auth:      handler.NewAuthHandler(deps.AuthService),
		courses:   handler.NewCourseHandler(deps.CourseService),
		schedule:  handler.NewScheduleHandler(deps.ScheduleService),
		authn:     middleware.Auth(deps.TokenVerifier),
		teacher:   middleware.RequireTeacher(),
		loginRate: loginLimiter(deps.LoginRateLimit),
	}
	routes.register(e)
	routes.register(e.Group("/api"))

	if deps.StaticDir != "" {
		e.Static("/", deps.StaticDir)
	}

	return e
}

type apiRoutes struct {
	auth     *handler.AuthHandler
	courses  *handler.CourseHandler
	schedule *handler.ScheduleHandler

	authn     echo.MiddlewareFunc
	teacher   echo.MiddlewareFunc
	loginRate []echo.MiddlewareFunc
}

func (r apiRoutes) register(g routeRegistrar) {
	g.POST("/auth/login", r.auth.Login, r.loginRate...)

	g.GET("/courses", r.courses.List)
	g.GET("/courses/:id", r.courses.Get)
	g.POST("/courses", r.courses.Create, r.authn, r.teacher)
	g.PUT("/courses/:id", r.courses.Update, r.authn, r.teacher)
	g.DELETE("/courses/:id", r.courses.Delete, r.authn, r.teacher)

	g.GET("/me/schedule", r.schedule.Get, r.authn)
	g.POST("/me/schedule/:courseId", r.schedule.Enroll, r.authn)
	g.DELETE("/me/schedule/:courseId", r.schedule.Drop, r.authn)
}

// loginLimiter is shared by both mounts so /auth/login and /api/auth/login
// draw from the same per-IP budget.
func loginLimiter(perSecond float64) []echo.MiddlewareFunc {
	if perSecond <= 0 {
		return nil
	}
	store := echomiddleware.NewRateLimiterMemoryStore(rate.Limit(perSecond))
	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
