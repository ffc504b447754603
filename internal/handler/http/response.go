package http

import (
	"net/http"

	"github.com/jiminoh-dev/linkup/internal/utils"
	"github.com/jiminoh-dev/linkup/models"
)

// writeError sends the uniform JSON error body {"error": msg}.
// All failed requests funnel through here so the wire shape stays identical
// across handlers.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
