package routes

import (
	"context"
	"net/http"
	"slices"
	"time"

	_ "crm_assistencia/docs" // swagger spec
	"crm_assistencia/internal/adapter/http/handlers"
	"crm_assistencia/internal/adapter/http/middleware"
	"crm_assistencia/internal/infrastructure/config"
	"crm_assistencia/internal/infrastructure/metrics"
	"crm_assistencia/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases served over HTTP. A nil Payments leaves
// the sale payment routes unregistered.
type Dependencies struct {
	Auth          usecase.IAuthUseCase
	Customers     usecase.ICustomerUseCase
	Products      usecase.IProductUseCase
	ServiceOrders usecase.IServiceOrderUseCase
	Sales         usecase.ISaleUseCase
	Reports       usecase.IReportUseCase
	Payments      usecase.ISalePaymentUseCase
	Metrics       *metrics.Metrics
}

// Run will start the server
func Run(cfg config.Config) error {
	ctx := context.Background()
	app, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Start()
	log.Info().Str("port", cfg.Port).Msg("[http][server] listening")
	return app.Router.Run(":" + cfg.Port)
}

func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, deps.Metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, deps.Auth)

	// Everything else needs a signed-in user.
	private := v1.Group("", middleware.Authenticate(deps.Auth))
	private.GET(PathAuth+"/me", handlers.NewAuthHandler(deps.Auth).Me)
	addCustomerRoutes(private, handlers.NewCustomerHandler(deps.Customers))
	addServiceOrderRoutes(private, handlers.NewServiceOrderHandler(deps.ServiceOrders))
	addSaleRoutes(private, handlers.NewSaleHandler(deps.Sales))
	if deps.Payments != nil {
		addSalePaymentRoutes(private, handlers.NewSalePaymentHandler(deps.Payments))
	}
	addProductRoutes(private, handlers.NewProductHandler(deps.Products))
	addReportRoutes(private, handlers.NewReportHandler(deps.Reports))

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[http][server] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	if m != nil {
		router.Use(middleware.Prometheus(m))
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
