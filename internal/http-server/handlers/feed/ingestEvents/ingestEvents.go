package ingestEvents

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

type IngestResponse struct {
	response.Response
	TotalEvents int                `json:"total_events"`
	Events      []models.Event     `json:"events"`
	Pagination  *models.Pagination `json:"pagination,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventIngester
type EventIngester interface {
	IngestGatechEvents(ctx context.Context) (*models.IngestResult, error)
	Feed(ctx context.Context, userID string, limit, page int) (*models.FeedPage, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserIDGetter
type UserIDGetter interface {
	UserID() (string, error)
}

// New triggers the backend ingestion job and reloads the first feed page so
// the view lands on fresh results.
func New(log *slog.Logger, api EventIngester, store UserIDGetter, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feed.ingestEvents.New"

		log = log.With(slog.String("op", op))

		result, err := api.IngestGatechEvents(r.Context())
		if err != nil {
			log.Error("failed to ingest events", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to ingest events"))
			return
		}

		log.Info("ingestion completed", slog.Int("total_events", result.Results.TotalEvents))

		userID, err := store.UserID()
		if err != nil {
			log.Error("failed to read user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read user id"))
			return
		}

		feed, err := api.Feed(r.Context(), userID, pageSize, 1)
		if err != nil {
			log.Error("failed to reload feed", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to reload feed"))
			return
		}

		responseOK(w, r, result, feed)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *models.IngestResult, feed *models.FeedPage) {
	render.JSON(w, r, IngestResponse{
		Response:    response.OK(),
		TotalEvents: result.Results.TotalEvents,
		Events:      feed.Events,
		Pagination:  feed.Pagination,
	})
}
