package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordseed/internal/database"
)

// StatusStore is what the health check needs from the database.
type StatusStore interface {
	Ping() error
	Counts() (database.RowCounts, error)
}

var _ StatusStore = (*database.Database)(nil)

type HealthResponse struct {
	Status  string              `json:"status"`
	Time    string              `json:"time"`
	Version string              `json:"version,omitempty"`
	Checks  map[string]string   `json:"checks"`
	Counts  *database.RowCounts `json:"counts,omitempty"`
}

type HealthController struct {
	store   StatusStore
	version string
}

func NewHealthController(store StatusStore, version string) *HealthController {
	return &HealthController{
		store:   store,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"
	var counts *database.RowCounts

	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"

			if rc, err := h.store.Counts(); err != nil {
				checks["seed"] = "error: " + err.Error()
				status = "unhealthy"
			} else {
				counts = &rc
				if rc.Users > 0 {
					checks["seed"] = "present"
				} else {
					checks["seed"] = "empty"
				}
			}
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
		Counts:  counts,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
