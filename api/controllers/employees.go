package controllers

import (
	"net/http"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/internal/employees"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
)

// EmployeesList returns every employee for the manager dropdown.
func EmployeesList(svc *employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employee service unavailable"))
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
