package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/handler/api"
	"salon-queue/internal/handler/middleware"
	"salon-queue/internal/infra/metrics"
	"salon-queue/internal/infra/ratelimit"
	"salon-queue/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
	Location    *api.LocationHandler
	Provider    *api.ProviderHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter ratelimit.Limiter,
	registry *metrics.Registry,
	logger *middleware.Logger,
) {
	setupMiddleware(engine, cfg, registry, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, registry *metrics.Registry, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics(registry))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter ratelimit.Limiter,
	registry *metrics.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(registry.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := middleware.RateLimit(limiter, cfg.Redis.RateFailOpen)
	staff := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(actor.RoleStaff)}
	owner := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(actor.RoleOwner)}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(limited, authMiddleware.OptionalAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/scheduled", Handler: h.Booking.CreateScheduled},
			{Method: http.MethodPost, Path: "/walkin", Handler: h.Booking.CreateWalkin},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.OptionalAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/checkin", Handler: h.Reservation.CheckIn, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Reservation.Complete, Mw: staff},
		})

		locations := apiGroup.Group("/locations")
		addRoutes(locations, []route{
			{Method: http.MethodGet, Path: "/:id/queue", Handler: h.Location.Queue},
			{Method: http.MethodGet, Path: "/:id/status", Handler: h.Location.Status},
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Location.Slots},
			{Method: http.MethodGet, Path: "/:id/providers/eligible", Handler: h.Location.EligibleProviders},
			{Method: http.MethodPut, Path: "/:id/pause", Handler: h.Location.Pause, Mw: owner},
			{Method: http.MethodDelete, Path: "/:id/pause", Handler: h.Location.Resume, Mw: owner},
		})

		providers := apiGroup.Group("/providers")
		addRoutes(providers, []route{
			{Method: http.MethodPut, Path: "/:id/availability", Handler: h.Provider.SetAvailability, Mw: owner},
			{Method: http.MethodPost, Path: "/:id/promote", Handler: h.Provider.PromoteNext, Mw: staff},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
