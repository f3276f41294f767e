package controllers

import (
	"net/http"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/internal/overview"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
)

// SceneWarehouses returns the laid-out warehouse overview scene.
func SceneWarehouses(svc *overview.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "overview service unavailable"))
			return
		}

		out, err := svc.WarehouseOverview(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// SceneStocks returns the stock overview scene for the warehouse named by
// the opaque "w" selector, falling back to the first warehouse.
func SceneStocks(svc *overview.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "overview service unavailable"))
			return
		}

		out, err := svc.StockOverview(ctx, r.URL.Query().Get("w"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}
