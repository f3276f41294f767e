package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehublabs/warehub-backend/api/controllers"
	"github.com/warehublabs/warehub-backend/api/middleware"
	"github.com/warehublabs/warehub-backend/internal/employees"
	"github.com/warehublabs/warehub-backend/internal/overview"
	"github.com/warehublabs/warehub-backend/internal/shelves"
	"github.com/warehublabs/warehub-backend/internal/stocks"
	"github.com/warehublabs/warehub-backend/internal/warehouses"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/metrics"
	pkgredis "github.com/warehublabs/warehub-backend/pkg/redis"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         controllers.Pinger
	Redis      *pkgredis.Client
	Metrics    *metrics.HTTPMetrics
	Registry   *prometheus.Registry
	Warehouses *warehouses.Service
	Stocks     *stocks.Service
	Shelves    *shelves.Service
	Employees  *employees.Service
	Overview   *overview.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    redisPinger(deps.Redis),
		}))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	var idempotencyStore pkgredis.IdempotencyStore
	if deps.Redis != nil {
		idempotencyStore = deps.Redis
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/warehouses", func(r chi.Router) {
			r.Get("/", controllers.WarehousesList(deps.Warehouses, logg))
			r.Post("/", controllers.WarehousesCreate(deps.Warehouses, logg))
			// Legacy frontend paths.
			r.Post("/add", controllers.WarehousesCreate(deps.Warehouses, logg))
			r.Post("/stocks/create", controllers.StocksCreate(deps.Stocks, logg))
			r.Get("/{id}", controllers.WarehousesGet(deps.Warehouses, logg))
			r.Put("/{id}", controllers.WarehousesUpdate(deps.Warehouses, logg))
			r.Delete("/{id}", controllers.WarehousesDelete(deps.Warehouses, logg))
			r.Get("/{id}/stocks", controllers.StocksByWarehouse(deps.Stocks, logg))
		})

		r.Route("/stocks", func(r chi.Router) {
			// Legacy stock view: selector in the w query parameter.
			r.Get("/", controllers.SceneStocks(deps.Overview, logg))
			r.Post("/", controllers.StocksCreate(deps.Stocks, logg))
			r.Get("/{id}", controllers.StocksGet(deps.Stocks, logg))
			r.Put("/{id}", controllers.StocksUpdate(deps.Stocks, logg))
			r.Delete("/{id}", controllers.StocksDelete(deps.Stocks, logg))
			r.Get("/{id}/items", controllers.StockItems(deps.Shelves, logg))
		})

		r.Get("/employees", controllers.EmployeesList(deps.Employees, logg))

		r.Route("/scene", func(r chi.Router) {
			r.Get("/warehouses", controllers.SceneWarehouses(deps.Overview, logg))
			r.Get("/stocks", controllers.SceneStocks(deps.Overview, logg))
		})
	})

	return r
}

// redisPinger keeps a typed-nil redis client from masquerading as a live
// dependency in the readiness map.
func redisPinger(client *pkgredis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
