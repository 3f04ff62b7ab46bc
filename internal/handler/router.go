package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petagenda/internal/handler/api"
	reqdto "petagenda/internal/handler/dto/request"
	"petagenda/internal/handler/middleware"
	"petagenda/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	subscriptionHandler *api.SubscriptionHandler,
	appointmentHandler *api.AppointmentHandler,
	daycareHandler *api.DaycareHandler,
	hotelHandler *api.HotelHandler,
	adminHandler *api.AdminHandler,
) {
	setupValidations()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, subscriptionHandler, appointmentHandler, daycareHandler, hotelHandler, adminHandler)
}

func setupValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := reqdto.RegisterValidations(v); err != nil {
			slog.Error("failed to register request validations", "error", err)
		}
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	subscriptionHandler *api.SubscriptionHandler,
	appointmentHandler *api.AppointmentHandler,
	daycareHandler *api.DaycareHandler,
	hotelHandler *api.HotelHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		subscriptions := apiGroup.Group("/subscriptions")
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: subscriptionHandler.CreateSubscription},
				{Method: http.MethodGet, Path: "", Handler: subscriptionHandler.ListSubscriptions},
				{Method: http.MethodGet, Path: "/:id", Handler: subscriptionHandler.GetSubscription},
				{Method: http.MethodPatch, Path: "/:id", Handler: subscriptionHandler.UpdateSubscription},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: subscriptionHandler.DeactivateSubscription},
				{Method: http.MethodPost, Path: "/:id/appointments/generate", Handler: subscriptionHandler.GenerateAppointments},
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: subscriptionHandler.ListAppointments},
				{Method: http.MethodPost, Path: "/:id/extras/toggle", Handler: subscriptionHandler.ToggleExtra},
				{Method: http.MethodPost, Path: "/:id/extras/value", Handler: subscriptionHandler.SetExtraValue},
				{Method: http.MethodPost, Path: "/:id/extras/quantity", Handler: subscriptionHandler.SetExtraQuantity},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.CreateAppointment},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListUpcoming},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: appointmentHandler.CompleteAppointment},
				{Method: http.MethodPost, Path: "/:id/extras/toggle", Handler: appointmentHandler.ToggleExtra},
				{Method: http.MethodPost, Path: "/:id/extras/value", Handler: appointmentHandler.SetExtraValue},
				{Method: http.MethodPost, Path: "/:id/extras/quantity", Handler: appointmentHandler.SetExtraQuantity},
			})
		}

		addBoardingRoutes(apiGroup.Group("/daycare"), daycareHandler.Handler())
		addBoardingRoutes(apiGroup.Group("/hotel"), hotelHandler.Handler())

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/monthly-reset", Handler: adminHandler.RunMonthlyReset},
				{Method: http.MethodGet, Path: "/reset-markers", Handler: adminHandler.ListResetMarkers},
				{Method: http.MethodGet, Path: "/reset-markers/:period", Handler: adminHandler.GetResetMarker},
			})
		}
	}
}

func addBoardingRoutes(g *gin.RouterGroup, h *api.BoardingHandler) {
	addRoutes(g, []route{
		{Method: http.MethodPost, Path: "", Handler: h.CreateRecord},
		{Method: http.MethodGet, Path: "", Handler: h.ListRecords},
		{Method: http.MethodGet, Path: "/:id", Handler: h.GetRecord},
		{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.DeactivateRecord},
		{Method: http.MethodPost, Path: "/:id/extras/toggle", Handler: h.ToggleExtra},
		{Method: http.MethodPost, Path: "/:id/extras/value", Handler: h.SetExtraValue},
		{Method: http.MethodPost, Path: "/:id/extras/quantity", Handler: h.SetExtraQuantity},
	})
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
