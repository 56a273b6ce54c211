package web

import (
	"fmt"
	"net/http"
	"strings"

	"stockroom/internal/core"
)

// exportCSV serves GET /export/csv?table=... as a CSV attachment.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimSpace(r.URL.Query().Get("table"))
	if table == "" {
		msg := fmt.Sprintf("table name is required; valid tables: %s",
			strings.Join(core.ExportableTables(), ", "))
		writeError(w, r, msg, "INVALID_ARGUMENT", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ExportTable(r.Context(), table)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+result.Filename)
	_, _ = w.Write(result.CSV)
}
