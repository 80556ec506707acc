package httpapi

import (
	"net/http"

	"interim-engine/internal/store"
)

type HealthHandler struct {
	Store *store.Store
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := h.Store.Count(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_unavailable", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"offers": n,
	})
}
