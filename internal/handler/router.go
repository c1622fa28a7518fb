package handler

import (
	"log/slog"
	"net/http"

	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/handler/api"
	"meeting-room-reservation/internal/handler/middleware"
	"meeting-room-reservation/internal/infra/metrics"
	"meeting-room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Room        *api.RoomHandler
	Me          *api.MeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	officerOnly := authMiddleware.RequireRoleAtLeast(user.RoleOfficer)
	executiveOnly := authMiddleware.RequireRoleAtLeast(user.RoleExecutive)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Me.Me},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "/conflicts", Handler: h.Reservation.CheckConflicts},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Reservation.Stats, Mw: []gin.HandlerFunc{executiveOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Edit},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Reservation.Approve, Mw: []gin.HandlerFunc{officerOnly}},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Reservation.Reject, Mw: []gin.HandlerFunc{officerOnly}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Room.Schedule},
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
