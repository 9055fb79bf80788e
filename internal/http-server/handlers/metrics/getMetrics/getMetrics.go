package getMetrics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

type MetricsResponse struct {
	response.Response
	Metrics *models.Metrics `json:"metrics"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MetricsGetter
type MetricsGetter interface {
	Metrics(ctx context.Context) (*models.Metrics, error)
}

// New returns the admin metrics readout. Refresh is just a re-request.
func New(log *slog.Logger, api MetricsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.metrics.getMetrics.New"

		log = log.With(slog.String("op", op))

		metrics, err := api.Metrics(r.Context())
		if err != nil {
			log.Error("failed to get metrics", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get metrics"))
			return
		}

		log.Info("metrics retrieved", slog.Int("interactions", metrics.Interactions))

		render.JSON(w, r, MetricsResponse{
			Response: response.OK(),
			Metrics:  metrics,
		})
	}
}
