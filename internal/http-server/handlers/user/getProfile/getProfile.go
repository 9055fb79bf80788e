package getProfile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
	"ramblinrecs/internal/recsapi"
)

type ProfileResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserIDGetter
type UserIDGetter interface {
	UserID() (string, error)
}

// New re-reads the onboarded user from the backend, the profile view edits
// against this snapshot and re-submits through onboarding.
func New(log *slog.Logger, api UserGetter, store UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getProfile.New"

		log = log.With(slog.String("op", op))

		userID, err := store.UserID()
		if err != nil {
			log.Error("failed to read user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read user id"))
			return
		}

		if userID == "" {
			log.Info("no user onboarded yet")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not onboarded"))
			return
		}

		user, err := api.GetUser(r.Context(), userID)
		if err != nil {
			log.Error("failed to get user", sl.Err(err))

			var statusErr *recsapi.StatusError
			if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		log.Info("profile loaded", slog.String("user_id", user.ID))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
