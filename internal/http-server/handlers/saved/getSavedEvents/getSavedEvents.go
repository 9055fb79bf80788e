package getSavedEvents

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

// the saved view filters against a wide feed window rather than a single
// display page, so saved events beyond page one still show up
const feedWindow = 200

type SavedEventsResponse struct {
	response.Response
	Events  []models.Event `json:"events"`
	Message string         `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedGetter
type FeedGetter interface {
	Feed(ctx context.Context, userID string, limit, page int) (*models.FeedPage, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LocalState
type LocalState interface {
	UserID() (string, error)
	SavedEventIDs() ([]string, error)
}

// New reconstructs the saved view client-side: saved-id set intersected with
// the current feed, ascending by start time. Saved ids that no longer match a
// feed event are dropped silently.
func New(log *slog.Logger, api FeedGetter, store LocalState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.saved.getSavedEvents.New"

		log = log.With(slog.String("op", op))

		userID, err := store.UserID()
		if err != nil {
			log.Error("failed to read user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read user id"))
			return
		}

		if userID == "" {
			responseEmpty(w, r, "complete onboarding to start saving events")
			return
		}

		ids, err := store.SavedEventIDs()
		if err != nil {
			log.Error("failed to read saved events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read saved events"))
			return
		}

		if len(ids) == 0 {
			responseEmpty(w, r, "no saved events yet")
			return
		}

		feed, err := api.Feed(r.Context(), userID, feedWindow, 1)
		if err != nil {
			log.Error("failed to load feed", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load feed"))
			return
		}

		saved := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			saved[id] = struct{}{}
		}

		events := make([]models.Event, 0, len(ids))
		for _, event := range feed.Events {
			if _, ok := saved[event.ID]; ok {
				event.Saved = true
				events = append(events, event)
			}
		}

		sort.Slice(events, func(i, j int) bool {
			return events[i].StartTime.Before(events[j].StartTime)
		})

		log.Info("saved events resolved",
			slog.Int("saved_ids", len(ids)),
			slog.Int("matched", len(events)),
		)

		render.JSON(w, r, SavedEventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}

func responseEmpty(w http.ResponseWriter, r *http.Request, message string) {
	render.JSON(w, r, SavedEventsResponse{
		Response: response.OK(),
		Events:   []models.Event{},
		Message:  message,
	})
}
