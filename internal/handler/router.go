package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	publicHandler *api.PublicHandler,
	customerAuthHandler *api.CustomerAuthHandler,
	ownerAuthHandler *api.OwnerAuthHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, publicHandler, customerAuthHandler, ownerAuthHandler, bookingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// The resolver re-dispatches tenant-host requests, so it sits before the
	// logger to log the rewritten request once.
	engine.Use(middleware.TenantResolver(engine, cfg.Platform))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	publicHandler *api.PublicHandler,
	customerAuthHandler *api.CustomerAuthHandler,
	ownerAuthHandler *api.OwnerAuthHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.NoRoute(middleware.TenantFallback())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		public.Use(middleware.RequireTenant())
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/:slug", Handler: publicHandler.TenantPage},
				{Method: http.MethodGet, Path: "/:slug/calendar", Handler: publicHandler.Calendar},
				{Method: http.MethodGet, Path: "/:slug/slots", Handler: publicHandler.Slots},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "/register", Handler: customerAuthHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: customerAuthHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: customerAuthHandler.Logout},
			})

			customerRequired := customers.Group("")
			customerRequired.Use(authMiddleware.RequireCustomer())
			addRoutes(customerRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: customerAuthHandler.Me},
				{Method: http.MethodGet, Path: "/me/bookings", Handler: bookingHandler.CustomerBookings},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: ownerAuthHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: ownerAuthHandler.Login},
			})

			ownerRequired := auth.Group("")
			ownerRequired.Use(authMiddleware.RequireOwner())
			addRoutes(ownerRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: ownerAuthHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			create := bookings.Group("")
			create.Use(authMiddleware.RequireCustomer())
			addRoutes(create, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			})

			list := bookings.Group("")
			list.Use(authMiddleware.RequireOwner())
			addRoutes(list, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.TenantBookings},
			})

			// Either party cancels through the same route; the audit trail
			// records who acted.
			cancel := bookings.Group("")
			cancel.Use(authMiddleware.RequireActor())
			addRoutes(cancel, []route{
				{Method: http.MethodDelete, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireOwner())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/tenant/profile", Handler: adminHandler.UpdateProfile},
				{Method: http.MethodPost, Path: "/staff", Handler: adminHandler.CreateStaff},
				{Method: http.MethodPut, Path: "/staff/:id", Handler: adminHandler.UpdateStaff},
				{Method: http.MethodDelete, Path: "/staff/:id", Handler: adminHandler.RemoveStaff},
				{Method: http.MethodPost, Path: "/services", Handler: adminHandler.CreateService},
				{Method: http.MethodPut, Path: "/services/:id", Handler: adminHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: adminHandler.DeleteService},
				{Method: http.MethodGet, Path: "/deposit-settings", Handler: adminHandler.GetDepositSettings},
				// POST and PUT share the upsert; clients use either
				{Method: http.MethodPost, Path: "/deposit-settings", Handler: adminHandler.UpdateDepositSettings},
				{Method: http.MethodPut, Path: "/deposit-settings", Handler: adminHandler.UpdateDepositSettings},
			})
		}
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
