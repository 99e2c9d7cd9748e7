package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campusfound/internal/imaging"
	"campusfound/internal/model"
	"campusfound/internal/query"
	"campusfound/internal/store"
)

const maxUploadSize = 10 << 20 // 10 MB

// ItemsHandler handles found-item report endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// List returns items matching the request's query parameters. Non-admin and
// anonymous callers see approved items only.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	f := query.Filter{
		Status:   params.Get("status"),
		Category: params.Get("category"),
		Location: params.Get("location"),
		Range:    params.Get("date"),
		Search:   params.Get("q"),
		Sort:     params.Get("sort"),
	}

	items := store.ListItems(r.Context(), h.DB)
	out := query.Apply(items, viewer(r, h.DB), f, time.Now())
	out = paginate(out, params.Get("offset"), params.Get("limit"))
	if out == nil {
		out = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, out)
}

// paginate slices the result window. Absent or malformed parameters mean no
// offset and no limit.
func paginate(items []model.Item, offsetStr, limitStr string) []model.Item {
	if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
		if offset > len(items) {
			offset = len(items)
		}
		items = items[offset:]
	}
	if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Get returns a single item. Non-admin callers only see approved items.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if item.Status != model.ItemStatusApproved && !viewer(r, h.DB).IsAdmin() {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

type itemRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	DateFound    string `json:"dateFound"`
	Description  string `json:"description"`
	ImageDataURL string `json:"imageDataUrl"`
}

// Create files a new report. The report enters the moderation queue as
// pending no matter who submits it. Logged-in reporters are recorded on the
// item; anonymous reports are accepted too.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		jsonError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.ImageDataURL != "" && !imaging.IsDataURL(req.ImageDataURL) {
		jsonError(w, http.StatusBadRequest, "imageDataUrl must be a data: URL")
		return
	}

	in := store.ItemInput{
		Title:        req.Title,
		Category:     req.Category,
		Location:     req.Location,
		DateFound:    req.DateFound,
		Description:  req.Description,
		ImageDataURL: req.ImageDataURL,
	}
	if claims := GetClaims(r.Context()); claims != nil {
		in.ReportedBy = &claims.UserID
	}

	item, err := store.AddItem(r.Context(), h.DB, in)
	if err != nil {
		slog.Error("creating item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

type itemPatchRequest struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
	DateFound    *string `json:"dateFound"`
	Description  *string `json:"description"`
	ImageDataURL *string `json:"imageDataUrl"`
	Status       *string `json:"status"`
}

// Update applies a partial edit to an item. Absent fields are untouched.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if store.GetItem(r.Context(), h.DB, id) == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	var req itemPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != nil && !model.ValidItemStatus(*req.Status) {
		jsonError(w, http.StatusBadRequest, "unknown status")
		return
	}
	if req.ImageDataURL != nil && *req.ImageDataURL != "" && !imaging.IsDataURL(*req.ImageDataURL) {
		jsonError(w, http.StatusBadRequest, "imageDataUrl must be a data: URL")
		return
	}

	patch := store.ItemPatch{
		Title:        req.Title,
		Category:     req.Category,
		Location:     req.Location,
		DateFound:    req.DateFound,
		Description:  req.Description,
		ImageDataURL: req.ImageDataURL,
		Status:       req.Status,
	}
	if err := store.UpdateItem(r.Context(), h.DB, id, patch); err != nil {
		slog.Error("updating item", "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	jsonResponse(w, http.StatusOK, store.GetItem(r.Context(), h.DB, id))
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves an item through the moderation workflow.
func (h *ItemsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if store.GetItem(r.Context(), h.DB, id) == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !model.ValidItemStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := store.SetItemStatus(r.Context(), h.DB, id, req.Status); err != nil {
		slog.Error("setting item status", "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	jsonResponse(w, http.StatusOK, store.GetItem(r.Context(), h.DB, id))
}

// UploadImage attaches a photo to an item. The upload is re-encoded and
// downscaled before being stored as a data URL on the item.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if store.GetItem(r.Context(), h.DB, id) == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, http.StatusBadRequest, "failed to parse form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	dataURL, err := imaging.ProcessToDataURL(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "unsupported or corrupt image")
		return
	}

	patch := store.ItemPatch{ImageDataURL: &dataURL}
	if err := store.UpdateItem(r.Context(), h.DB, id, patch); err != nil {
		slog.Error("storing item image", "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}
	jsonResponse(w, http.StatusOK, store.GetItem(r.Context(), h.DB, id))
}

// Delete removes an item and every claim that references it.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if store.GetItem(r.Context(), h.DB, id) == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		slog.Error("deleting item", "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Suggest returns live search suggestions for the item list.
func (h *ItemsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	items := store.ListItems(r.Context(), h.DB)
	jsonResponse(w, http.StatusOK, query.Suggest(items, q, 8))
}

// Stats returns the admin dashboard aggregates.
func (h *ItemsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	items := store.ListItems(r.Context(), h.DB)
	claims := store.ListClaims(r.Context(), h.DB)
	jsonResponse(w, http.StatusOK, query.ComputeStats(items, claims, time.Now()))
}
