package api

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"

	"campusfound/internal/backup"
)

// BackupHandler handles full-database export and import for admins.
type BackupHandler struct {
	DB *sql.DB
}

// Export returns every collection as a single versioned JSON document.
// User passwords are redacted in the output.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	b, err := backup.Export(r.Context(), h.DB)
	if err != nil {
		slog.Error("exporting backup", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to export backup")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="campusfound-backup.json"`)
	jsonResponse(w, http.StatusOK, b)
}

// Import replaces the stored collections with the ones from an uploaded
// backup document. The active session is preserved.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
	r.Body.Close()
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := backup.Import(r.Context(), h.DB, raw); err != nil {
		if backup.IsFormat(err) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("importing backup", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to import backup")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "backup imported"})
}
