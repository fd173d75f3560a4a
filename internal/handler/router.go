package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Bookings     *api.BookingHandler
	Users        *api.UserHandler
	Items        *api.ItemHandler
	ItemRequests *api.ItemRequestHandler
	Health       *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, actor *middleware.ActorMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, actor)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, actor *middleware.ActorMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Users.List},
			{Method: http.MethodGet, Path: "/:userId", Handler: h.Users.Get},
			{Method: http.MethodPatch, Path: "/:userId", Handler: h.Users.Update},
			{Method: http.MethodDelete, Path: "/:userId", Handler: h.Users.Delete},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(actor.RequireActor())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.ListForBooker},
			{Method: http.MethodGet, Path: "/owner", Handler: h.Bookings.ListForOwner},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: h.Bookings.SetApproval},
		})
	}

	items := engine.Group("/items")
	items.Use(actor.RequireActor())
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Items.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Items.ListOwn},
			{Method: http.MethodGet, Path: "/search", Handler: h.Items.Search},
			{Method: http.MethodGet, Path: "/:itemId", Handler: h.Items.Get},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: h.Items.Update},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: h.Items.AddComment},
		})
	}

	requests := engine.Group("/requests")
	requests.Use(actor.RequireActor())
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.ItemRequests.Create},
			{Method: http.MethodGet, Path: "", Handler: h.ItemRequests.ListOwn},
			{Method: http.MethodGet, Path: "/all", Handler: h.ItemRequests.ListOthers},
			{Method: http.MethodGet, Path: "/:requestId", Handler: h.ItemRequests.Get},
		})
	}
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
