package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/pdf"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/config"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/filestorage"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/middleware"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/service"
)

// InitRouter arma todo el árbol de rutas. Las lecturas quedan bajo /api sin
// autenticación; toda mutación pasa por el middleware de JWT.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage("uploads")
	if err != nil {
		logger.Fatal("No se pudo crear el almacenamiento de archivos", zap.Error(err))
	}
	generador := pdf.NewGenerador(cfg.PDF.DirPlantillas, logger)

	var cache repositories.CacheRepositoryInterface
	if redisClient != nil {
		cache = repositories.NewRedisCacheRepository(redisClient)
	}
	cacheTTL := cfg.Cache.ListadoTTL

	// Repositorios
	clienteRepo := repositories.NewClienteRepository(dbConn)
	productoRepo := repositories.NewProductoRepository(dbConn)
	presupuestoRepo := repositories.NewPresupuestoRepository(dbConn)
	pedidoRepo := repositories.NewPedidoRepository(dbConn)
	instalacionRepo := repositories.NewInstalacionRepository(dbConn)
	instaladorRepo := repositories.NewInstaladorRepository(dbConn)
	vehiculoRepo := repositories.NewVehiculoRepository(dbConn)
	herramientaRepo := repositories.NewHerramientaRepository(dbConn)
	proveedorRepo := repositories.NewProveedorRepository(dbConn)
	pedidoProveedorRepo := repositories.NewPedidoProveedorRepository(dbConn)
	fabricacionRepo := repositories.NewFabricacionRepository(dbConn)
	logisticaRepo := repositories.NewLogisticaRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	reporteRepo := repositories.NewReporteRepository(dbConn)

	// Servicios
	clienteService := services.NewClienteService(clienteRepo, cache, cacheTTL, logger)
	productoService := services.NewProductoService(productoRepo, cache, cacheTTL, logger)
	presupuestoService := services.NewPresupuestoService(presupuestoRepo, generador, fileStorage, cache, logger)
	pedidoService := services.NewPedidoService(pedidoRepo, logger)
	instalacionService := services.NewInstalacionService(instalacionRepo, logger)
	instaladorService := services.NewInstaladorService(instaladorRepo, cache, cacheTTL, logger)
	vehiculoService := services.NewVehiculoService(vehiculoRepo, cache, cacheTTL, logger)
	herramientaService := services.NewHerramientaService(herramientaRepo, cache, cacheTTL, logger)
	proveedorService := services.NewProveedorService(proveedorRepo, cache, cacheTTL, logger)
	pedidoProveedorService := services.NewPedidoProveedorService(pedidoProveedorRepo, logger)
	fabricacionService := services.NewFabricacionService(fabricacionRepo, logger)
	logisticaService := services.NewLogisticaService(logisticaRepo, instalacionRepo, cache, logger)
	authService := services.NewAuthService(instaladorRepo, jwtSvc, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)
	reporteService := services.NewReporteService(reporteRepo, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runClienteRouter(api, secureGroup, clienteService, logger)
	runProductoRouter(api, secureGroup, productoService, logger)
	runPresupuestoRouter(api, secureGroup, presupuestoService, logger)
	runPedidoRouter(api, secureGroup, pedidoService, logger)
	runInstalacionRouter(api, secureGroup, instalacionService, logisticaService, logger)
	runInstaladorRouter(api, secureGroup, instaladorService, logger)
	runVehiculoRouter(api, secureGroup, vehiculoService, logger)
	runHerramientaRouter(api, secureGroup, herramientaService, logger)
	runProveedorRouter(api, secureGroup, proveedorService, logger)
	runPedidoProveedorRouter(api, secureGroup, pedidoProveedorService, logger)
	runFabricacionRouter(api, secureGroup, fabricacionService, logger)
	runDashboardRouter(api, dashboardService, logger)
	runReporteRouter(api, reporteService, logger)
	runUploadRouter(secureGroup, fileStorage, logger)
}
