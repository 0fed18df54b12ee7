package health

import (
	"net/http"
	"time"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
)

// HealthResponse ответ проверки работоспособности
type HealthResponse struct {
	OK   bool   `json:"ok"`
	Name string `json:"name"`
	Time string `json:"time"`
}

type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		OK:   true,
		Name: h.serviceName,
		Time: time.Now().UTC().Format(time.RFC3339),
	})
}
