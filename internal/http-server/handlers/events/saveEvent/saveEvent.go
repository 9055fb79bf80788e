package saveEvent

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
)

type SaveResponse struct {
	response.Response
	Saved bool `json:"saved"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(id string) error
}

// New adds an event id to the local saved set. Saving an already-saved event
// is a no-op.
func New(log *slog.Logger, store EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.saveEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		if err := store.SaveEvent(eventID); err != nil {
			log.Error("failed to save event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save event"))
			return
		}

		log.Info("event saved")

		render.JSON(w, r, SaveResponse{
			Response: response.OK(),
			Saved:    true,
		})
	}
}
