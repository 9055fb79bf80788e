package unsaveEvent

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
)

type UnsaveResponse struct {
	response.Response
	Saved bool `json:"saved"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUnsaver
type EventUnsaver interface {
	UnsaveEvent(id string) error
}

// New removes an event id from the local saved set. Removing an id that was
// never saved is a no-op.
func New(log *slog.Logger, store EventUnsaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.unsaveEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		if err := store.UnsaveEvent(eventID); err != nil {
			log.Error("failed to unsave event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to unsave event"))
			return
		}

		log.Info("event unsaved")

		render.JSON(w, r, UnsaveResponse{
			Response: response.OK(),
			Saved:    false,
		})
	}
}
