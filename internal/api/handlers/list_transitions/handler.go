package list_transitions

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

const (
	msgInvalidLimit = "некорректный limit"
)

type Handler struct {
	businessID string
	journal    JournalReader
	logger     Logger
}

func NewHandler(businessID string, journal JournalReader, logger Logger) *Handler {
	return &Handler{
		businessID: businessID,
		journal:    journal,
		logger:     logger,
	}
}

// Handle GET /api/v1/transitions
// Query params: limit, appointmentId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		h.logger.Warn("GET /transitions - Invalid limit: %q", r.URL.Query().Get("limit"))
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	filter := domain.JournalFilter{
		BusinessID: h.businessID,
		Limit:      limit,
	}
	if id := strings.TrimSpace(r.URL.Query().Get("appointmentId")); id != "" {
		filter.AppointmentID = &id
	}

	entries, err := h.journal.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /transitions - Failed to list journal: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /transitions - Journal returned: count=%d", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromDomainEntries(entries))
}
