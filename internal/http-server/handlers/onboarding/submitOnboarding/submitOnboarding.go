package submitOnboarding

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/interests"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/models"
)

type OnboardingRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	DisplayName     string   `json:"display_name"`
	Interests       []string `json:"interests"`
	CustomInterests string   `json:"custom_interests"`
}

type OnboardingResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBootstrapper
type UserBootstrapper interface {
	Bootstrap(ctx context.Context, email, displayName string, interests []string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileSaver
type ProfileSaver interface {
	SetUserID(id string) error
	SetUserEmail(email string) error
}

func New(log *slog.Logger, api UserBootstrapper, store ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.onboarding.submitOnboarding.New"

		log = log.With(slog.String("op", op))

		var req OnboardingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		merged := interests.Merge(req.Interests, req.CustomInterests)

		user, err := api.Bootstrap(r.Context(), req.Email, req.DisplayName, merged)
		if err != nil {
			log.Error("failed to bootstrap user", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		// the profile keys are written only after a successful bootstrap, a
		// failed call must leave no user_id behind
		if err = store.SetUserID(user.ID); err != nil {
			log.Error("failed to store user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to store user id"))

			return
		}

		if err = store.SetUserEmail(user.Email); err != nil {
			log.Error("failed to store user email", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to store user email"))

			return
		}

		log.Info("user onboarded", slog.String("user_id", user.ID))

		responseOK(w, r, user)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, user *models.User) {
	render.JSON(w, r, OnboardingResponse{
		Response: response.OK(),
		User:     user,
	})
}
