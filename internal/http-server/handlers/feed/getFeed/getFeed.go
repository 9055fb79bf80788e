package getFeed

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

type FeedResponse struct {
	response.Response
	Events     []models.Event     `json:"events"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedProvider
type FeedProvider interface {
	Feed(ctx context.Context, userID string, limit, page int) (*models.FeedPage, error)
	Search(ctx context.Context, q string, limit int, userID string) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LocalState
type LocalState interface {
	UserID() (string, error)
	SavedEventIDs() ([]string, error)
}

// New returns the feed view handler. A non-blank q supersedes the
// personalized feed until cleared; each fetch replaces the displayed page.
func New(log *slog.Logger, api FeedProvider, store LocalState, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feed.getFeed.New"

		log = log.With(slog.String("op", op))

		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			var err error
			page, err = strconv.Atoi(pageStr)
			if err != nil || page < 1 {
				log.Error("invalid page number", slog.String("page", pageStr))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page number"))
				return
			}
		}

		userID, err := store.UserID()
		if err != nil {
			log.Error("failed to read user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read user id"))
			return
		}

		q := strings.TrimSpace(r.URL.Query().Get("q"))

		var feed *models.FeedPage
		if q != "" {
			events, err := api.Search(r.Context(), q, pageSize, userID)
			if err != nil {
				log.Error("failed to search events", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to search events"))
				return
			}
			feed = &models.FeedPage{Events: events}
		} else {
			feed, err = api.Feed(r.Context(), userID, pageSize, page)
			if err != nil {
				log.Error("failed to load feed", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to load feed"))
				return
			}
		}

		markSaved(log, store, feed.Events)

		log.Info("feed loaded",
			slog.Int("count", len(feed.Events)),
			slog.Int("page", page),
			slog.String("q", q),
		)

		responseOK(w, r, feed)
	}
}

// markSaved annotates each event with local saved-set membership. A storage
// failure here only loses the annotation, never the feed.
func markSaved(log *slog.Logger, store LocalState, events []models.Event) {
	ids, err := store.SavedEventIDs()
	if err != nil {
		log.Warn("failed to read saved events", sl.Err(err))
		return
	}

	saved := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		saved[id] = struct{}{}
	}

	for i := range events {
		_, events[i].Saved = saved[events[i].ID]
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, feed *models.FeedPage) {
	render.JSON(w, r, FeedResponse{
		Response:   response.OK(),
		Events:     feed.Events,
		Pagination: feed.Pagination,
	})
}
