package clickEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

type ClickResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedbackSender
type FeedbackSender interface {
	SendFeedback(ctx context.Context, fb models.Feedback) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserIDGetter
type UserIDGetter interface {
	UserID() (string, error)
}

// New records a click-through signal. The feedback POST is fire-and-forget: a
// backend failure is logged and never surfaced to the view.
func New(log *slog.Logger, api FeedbackSender, store UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.clickEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		userID, err := store.UserID()
		if err != nil {
			log.Error("failed to read user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read user id"))
			return
		}

		if userID == "" {
			// clicks from pre-onboarding sessions carry no signal worth keeping
			log.Debug("no user id stored, click dropped")
			render.JSON(w, r, ClickResponse{Response: response.OK()})
			return
		}

		fb := models.Feedback{
			UserID:  userID,
			EventID: eventID,
			Clicked: true,
		}

		if err = api.SendFeedback(r.Context(), fb); err != nil {
			log.Warn("failed to send click feedback", sl.Err(err))
		}

		render.JSON(w, r, ClickResponse{Response: response.OK()})
	}
}
