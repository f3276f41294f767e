package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/internal/employees"
	"github.com/warehublabs/warehub-backend/internal/overview"
	"github.com/warehublabs/warehub-backend/internal/shelves"
	"github.com/warehublabs/warehub-backend/internal/stocks"
	"github.com/warehublabs/warehub-backend/internal/warehouses"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/db/models"
	"github.com/warehublabs/warehub-backend/pkg/metrics"
	"github.com/warehublabs/warehub-backend/pkg/selector"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func setupRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
  emp_id INTEGER PRIMARY KEY AUTOINCREMENT,
  emp_firstname TEXT NOT NULL,
  emp_lastname TEXT NOT NULL,
  username TEXT NOT NULL UNIQUE
);`,
		`CREATE TABLE IF NOT EXISTS warehouse (
  wh_id INTEGER PRIMARY KEY AUTOINCREMENT,
  wh_name TEXT NOT NULL,
  capacity INTEGER NOT NULL,
  wh_manager_id INTEGER,
  address TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS stock (
  stock_id INTEGER PRIMARY KEY AUTOINCREMENT,
  stock_name TEXT NOT NULL,
  capacity INTEGER NOT NULL,
  wh_id INTEGER NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS shelf (
  shelf_id INTEGER PRIMARY KEY AUTOINCREMENT,
  stock_id INTEGER NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS shelf_items (
  shelf_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  shelf_id INTEGER NOT NULL,
  amount INTEGER NOT NULL DEFAULT 0,
  product_name TEXT NOT NULL DEFAULT '',
  sku TEXT NOT NULL DEFAULT '',
  brand TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  received_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{"shelf_items", "shelf", "stock", "warehouse", "employees"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Scene: config.SceneConfig{
			WarehouseSpacingX: 15,
			WarehouseSpacingZ: 16,
			StockSpacingX:     15,
			StockSpacingZ:     14,
			ColumnsPerRow:     3,
		},
	}

	empSvc, err := employees.NewService(employees.ServiceParams{Repo: employees.NewRepository(db)})
	require.NoError(t, err)

	whSvc, err := warehouses.NewService(warehouses.ServiceParams{
		Repo:     warehouses.NewRepository(db),
		Tx:       gormTxRunner{db: db},
		Managers: empSvc,
	})
	require.NoError(t, err)

	stockSvc, err := stocks.NewService(stocks.ServiceParams{
		Repo:       stocks.NewRepository(db),
		Tx:         gormTxRunner{db: db},
		Warehouses: whSvc,
	})
	require.NoError(t, err)

	shelfSvc, err := shelves.NewService(shelves.ServiceParams{Repo: shelves.NewRepository(db)})
	require.NoError(t, err)

	overviewSvc, err := overview.NewService(overview.ServiceParams{
		Warehouses: whSvc,
		Stocks:     stockSvc,
		Scene:      cfg.Scene,
	})
	require.NoError(t, err)

	registry := prometheus.NewRegistry()

	return NewRouter(Deps{
		Config:     cfg,
		Logger:     nil,
		DB:         stubPinger{},
		Metrics:    metrics.NewHTTPMetrics(registry),
		Registry:   registry,
		Warehouses: whSvc,
		Stocks:     stockSvc,
		Shelves:    shelfSvc,
		Employees:  empSvc,
		Overview:   overviewSvc,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), "body: %s", w.Body.String())
	return out
}

func TestWarehouseCRUDFlow(t *testing.T) {
	db := setupRouterTestDB(t)
	handler := newTestRouter(t, db)

	require.NoError(t, db.Create(&models.Employee{
		FirstName: "Ada", LastName: "Byron", Username: "abyron",
	}).Error)

	// Create with a resolvable manager.
	w := doJSON(t, handler, http.MethodPost, "/api/warehouses",
		`{"wh_name":"Central","capacity":100,"username":"abyron","address":"12 Dock Rd"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeMap(t, w)
	assert.Equal(t, "Central", created["wh_name"])
	whID := strconv.FormatInt(int64(created["wh_id"].(float64)), 10)
	whPath := "/api/warehouses/" + whID

	// Unknown manager is a 400, not a 404.
	w = doJSON(t, handler, http.MethodPost, "/api/warehouses",
		`{"wh_name":"North","capacity":50,"username":"nobody"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Manager not found", decodeMap(t, w)["message"])

	// Missing fields, via the legacy path alias.
	w = doJSON(t, handler, http.MethodPost, "/api/warehouses/add", `{"capacity":50}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decodeMap(t, w)["message"])

	// List and detail.
	w = doJSON(t, handler, http.MethodGet, "/api/warehouses", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodGet, whPath, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeMap(t, w)
	assert.Equal(t, "Ada Byron", detail["manager_name"])
	assert.Equal(t, "12 Dock Rd", detail["location"])
	assert.Equal(t, float64(0), detail["current"])

	w = doJSON(t, handler, http.MethodGet, "/api/warehouses/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Warehouse not found", decodeMap(t, w)["message"])

	// Stock under the warehouse.
	w = doJSON(t, handler, http.MethodPost, "/api/stocks",
		`{"stock_name":"Zone A","capacity":60,"wh_id":`+whID+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stockID := int64(decodeMap(t, w)["stock_id"].(float64))
	stockPath := "/api/stocks/" + strconv.FormatInt(stockID, 10)

	w = doJSON(t, handler, http.MethodGet, whPath+"/stocks", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Fill a shelf, then watch both delete guards trip.
	shelf := models.Shelf{StockID: stockID}
	require.NoError(t, db.Create(&shelf).Error)
	require.NoError(t, db.Create(&models.ShelfItem{ShelfID: shelf.ID, Amount: 30, ProductName: "Widget"}).Error)

	w = doJSON(t, handler, http.MethodDelete, whPath, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Warehouse is not empty", decodeMap(t, w)["message"])

	w = doJSON(t, handler, http.MethodDelete, stockPath, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Stock is not empty", decodeMap(t, w)["message"])

	// Occupancy is derived on every read.
	w = doJSON(t, handler, http.MethodGet, whPath, "")
	assert.Equal(t, float64(30), decodeMap(t, w)["current"])

	// Drain the shelf and delete bottom-up.
	require.NoError(t, db.Exec("DELETE FROM shelf_items").Error)

	w = doJSON(t, handler, http.MethodDelete, stockPath, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeMap(t, w)["success"])

	w = doJSON(t, handler, http.MethodDelete, whPath, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodDelete, whPath, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockItemsSorting(t *testing.T) {
	db := setupRouterTestDB(t)
	handler := newTestRouter(t, db)

	wh := models.Warehouse{Name: "Central", Capacity: 100}
	require.NoError(t, db.Create(&wh).Error)
	st := models.Stock{Name: "Zone A", Capacity: 60, WarehouseID: wh.ID}
	require.NoError(t, db.Create(&st).Error)
	sh := models.Shelf{StockID: st.ID}
	require.NoError(t, db.Create(&sh).Error)
	require.NoError(t, db.Create(&models.ShelfItem{ShelfID: sh.ID, Amount: 5, ProductName: "RAM"}).Error)
	require.NoError(t, db.Create(&models.ShelfItem{ShelfID: sh.ID, Amount: 20, ProductName: "Cooler"}).Error)

	itemsPath := "/api/stocks/" + strconv.FormatInt(st.ID, 10) + "/items"
	w := doJSON(t, handler, http.MethodGet, itemsPath+"?sort=qty-desc", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Cooler", items[0]["name"])
	assert.Equal(t, float64(20), items[0]["qty"])

	w = doJSON(t, handler, http.MethodGet, "/api/stocks/999/items", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Stock not found", decodeMap(t, w)["message"])
}

func TestSceneEndpoints(t *testing.T) {
	db := setupRouterTestDB(t)
	handler := newTestRouter(t, db)

	first := models.Warehouse{Name: "Central", Capacity: 100}
	require.NoError(t, db.Create(&first).Error)
	second := models.Warehouse{Name: "North", Capacity: 50}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&models.Stock{Name: "Zone A", Capacity: 60, WarehouseID: second.ID}).Error)

	w := doJSON(t, handler, http.MethodGet, "/api/scene/warehouses", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := decodeMap(t, w)
	sc := out["scene"].(map[string]any)
	// Two warehouses plus the add cell.
	assert.Len(t, sc["zones"].([]any), 3)

	w = doJSON(t, handler, http.MethodGet, "/api/scene/stocks?w="+selector.Encode(second.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	out = decodeMap(t, w)
	assert.Equal(t, float64(second.ID), out["selected_wh_id"])
	assert.Len(t, out["stocks"].([]any), 1)

	// Legacy stock view path serves the same payload.
	w = doJSON(t, handler, http.MethodGet, "/api/stocks?w="+selector.Encode(second.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(second.ID), decodeMap(t, w)["selected_wh_id"])

	// A stale selector degrades to the first warehouse.
	w = doJSON(t, handler, http.MethodGet, "/api/scene/stocks?w="+selector.Encode(second.ID+100), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(first.ID), decodeMap(t, w)["selected_wh_id"])
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	db := setupRouterTestDB(t)
	handler := newTestRouter(t, db)

	w := doJSON(t, handler, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", decodeMap(t, w)["status"])

	w = doJSON(t, handler, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestEmployeesEndpoint(t *testing.T) {
	db := setupRouterTestDB(t)
	handler := newTestRouter(t, db)

	require.NoError(t, db.Create(&models.Employee{
		FirstName: "Ada", LastName: "Byron", Username: "abyron",
	}).Error)

	w := doJSON(t, handler, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)

	var emps []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&emps))
	require.Len(t, emps, 1)
	assert.Equal(t, "abyron", emps[0]["username"])
}
