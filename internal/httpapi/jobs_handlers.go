package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"interim-engine/internal/domain"
	"interim-engine/internal/search"
)

type JobsHandler struct {
	Search *search.Service
}

type jobsPage struct {
	Results  []domain.JobOffer `json:"results"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := q.Get("city")
	title := q.Get("title")

	page := intParam(q.Get("page"), 1)
	pageSize := intParam(q.Get("page_size"), 10)

	results, total := h.Search.SearchJobsPaginated(r.Context(), city, title, page, pageSize)
	WriteJSON(w, http.StatusOK, jobsPage{
		Results:  results,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	offer := h.Search.GetJobDetails(r.Context(), id)
	if offer == nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "job "+id+" not found")
		return
	}
	WriteJSON(w, http.StatusOK, offer)
}

func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
