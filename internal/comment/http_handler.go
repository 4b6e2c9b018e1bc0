package comment

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

type createCommentRequest struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

func bookIDFrom(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("bookID"), 10, 64)
	return id, err == nil
}

// List handles GET /books/{bookID}/comments
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID, ok := bookIDFrom(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "book id must be an integer", nil)
		return
	}

	query := r.URL.Query()
	req := pagination.FromQuery(query.Get("page"), query.Get("size"), query.Get("sort"), query.Get("desc"))

	page, err := h.service.List(r.Context(), bookID, query.Get("author"), query.Get("text"), req)
	if err != nil {
		httpx.WriteError(r, w, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []Comment{}
	}
	httpx.JSONSuccessWithRequest(r, w, items, map[string]any{
		"page":        req.Page,
		"size":        req.Size,
		"total":       page.Total,
		"total_pages": page.TotalPages(req.Size),
	})
}

// Create handles POST /books/{bookID}/comments
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookID, ok := bookIDFrom(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "book id must be an integer", nil)
		return
	}

	var in createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(in); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "validation failed", details)
		return
	}

	c, err := h.service.Add(r.Context(), bookID, in.Author, in.Text)
	if err != nil {
		httpx.WriteError(r, w, err)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, c)
}

// Delete handles DELETE /books/{bookID}/comments/{commentID}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, ok := bookIDFrom(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "book id must be an integer", nil)
		return
	}
	commentID, err := strconv.ParseInt(r.PathValue("commentID"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "comment id must be an integer", nil)
		return
	}

	if err := h.service.Delete(r.Context(), bookID, commentID); err != nil {
		httpx.WriteError(r, w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
