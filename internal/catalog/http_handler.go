package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/pagination"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createBookRequest struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author" validate:"required"`
	PubYear int    `json:"pub_year" validate:"required,gt=0"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := pagination.FromQuery(query.Get("page"), query.Get("size"), query.Get("sort"), query.Get("desc"))

	page, err := h.service.Search(r.Context(), query.Get("q"), req)
	if err != nil {
		httpx.WriteError(r, w, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []Book{}
	}
	httpx.JSONSuccessWithRequest(r, w, items, map[string]any{
		"page":        req.Page,
		"size":        req.Size,
		"total":       page.Total,
		"total_pages": page.TotalPages(req.Size),
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "book id must be an integer", nil)
		return
	}

	book, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, book, nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(in); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "validation failed", details)
		return
	}

	book, err := h.service.Add(r.Context(), in.Title, in.Author, in.PubYear)
	if err != nil {
		httpx.WriteError(r, w, err)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, book)
}
