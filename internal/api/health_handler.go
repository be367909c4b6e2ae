package api

import (
	"net/http"

	"github.com/phrazzld/taskdeck-api/internal/api/shared"
)

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
