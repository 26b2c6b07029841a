package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gym-reservation-engine/internal/handler/api"
	"gym-reservation-engine/internal/handler/middleware"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Admin  *api.AdminHandler
	Member *api.MemberHandler
	Agent  *api.AgentHandler
}

// Observability is the HTTP side of the metrics component.
type Observability interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) {
	setupMiddleware(engine, cfg, logger, obs)
	setupRoutes(engine, cfg, h, authMiddleware, obs)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware(obs))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, auth *middleware.AuthMiddleware, obs Observability) {
	engine.GET("/health", healthCheck)
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(obs.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		admin := apiGroup.Group("/admin")
		admin.Use(auth.RequireRole(jwt.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Admin.CreateReservation},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListReservations},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Admin.CancelReservation},
			{Method: http.MethodPut, Path: "/reservations/:id/status", Handler: h.Admin.UpdateStatus},
			{Method: http.MethodGet, Path: "/quote", Handler: h.Admin.Quote},
			{Method: http.MethodPost, Path: "/members/:id/topup", Handler: h.Admin.TopUp},
			{Method: http.MethodGet, Path: "/members/:id/ledger", Handler: h.Admin.LedgerHistory},
			{Method: http.MethodPost, Path: "/settings/member-levels/invalidate", Handler: h.Admin.InvalidateMemberLevels},
		})

		member := apiGroup.Group("/member")
		member.Use(auth.RequireRole(jwt.RoleMember), auth.RequireMember())
		addRoutes(member, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Member.CreateReservation},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Member.ListReservations},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Member.CancelReservation},
			{Method: http.MethodGet, Path: "/ledger", Handler: h.Member.Ledger},
			{Method: http.MethodGet, Path: "/quote", Handler: h.Member.Quote},
		})

		agent := apiGroup.Group("/agent/tools")
		agent.Use(auth.RequireRole(jwt.RoleAgent))
		addRoutes(agent, []route{
			{Method: http.MethodPost, Path: "/search-courts", Handler: h.Agent.SearchCourts},
			{Method: http.MethodPost, Path: "/book-court", Handler: h.Agent.BookCourt, Mw: []gin.HandlerFunc{auth.RequireMember()}},
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
