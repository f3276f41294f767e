package controllers

import (
	"net/http"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/api/validators"
	"github.com/warehublabs/warehub-backend/internal/shelves"
	"github.com/warehublabs/warehub-backend/internal/stocks"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
)

// StocksByWarehouse lists the warehouse's stock areas with occupancy.
func StocksByWarehouse(svc *stocks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.ListByWarehouse(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// StocksGet returns one stock area with occupancy.
func StocksGet(svc *stocks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// StocksCreate inserts a stock area and echoes the stored row.
func StocksCreate(svc *stocks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		var payload stocks.CreateStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.Create(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// StocksUpdate replaces the name and capacity of one stock area.
func StocksUpdate(svc *stocks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload stocks.UpdateStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.Update(ctx, id, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// StocksDelete removes an empty stock area.
func StocksDelete(svc *stocks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteAck(w)
	}
}

// StockItems lists the shelf items of one stock area in the requested order.
func StockItems(svc *shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order := shelves.ParseOrder(r.URL.Query().Get("sort"))
		out, err := svc.ListItems(ctx, id, order)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}
