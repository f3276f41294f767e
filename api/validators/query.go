package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
)

// ParsePathID reads a positive integer id from a chi route parameter.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid id").
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	return value, nil
}
