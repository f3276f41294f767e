package controllers

import (
	"net/http"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/api/validators"
	"github.com/warehublabs/warehub-backend/internal/warehouses"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
)

// WarehousesList returns the id/name rows the warehouse picker consumes.
func WarehousesList(svc *warehouses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
			return
		}

		out, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// WarehousesGet returns one warehouse with its manager name and derived
// occupancy.
func WarehousesGet(svc *warehouses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
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

// WarehousesCreate inserts a warehouse and echoes the stored row.
func WarehousesCreate(svc *warehouses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
			return
		}

		var payload warehouses.CreateWarehouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.Create(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// WarehousesUpdate replaces the mutable columns of one warehouse.
func WarehousesUpdate(svc *warehouses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload warehouses.UpdateWarehouseRequest
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

// WarehousesDelete removes an empty warehouse.
func WarehousesDelete(svc *warehouses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
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
