package get_bestsellers

import (
	"net/http"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
)

type Handler struct {
	service BestsellerService
	logger  Logger
}

func NewHandler(service BestsellerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bestsellers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bestsellers - Failed to list bestsellers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
