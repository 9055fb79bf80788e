package composeFeedback

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"ramblinrecs/internal/lib/api/response"
	"ramblinrecs/internal/lib/logger/sl"
	"ramblinrecs/internal/lib/mailto"
)

type FeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type FeedbackResponse struct {
	response.Response
	MailtoLink string `json:"mailto_link"`
}

// New builds a mailto link from the feedback form. Delivery happens in the
// user's mail client, nothing is sent to the backend.
func New(log *slog.Logger, recipient string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feedback.composeFeedback.New"

		log = log.With(slog.String("op", op))

		var req FeedbackRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		link := mailto.Link(recipient, mailto.Message{
			Name:     req.Name,
			Email:    req.Email,
			Category: req.Category,
			Subject:  req.Subject,
			Body:     req.Message,
		})

		log.Info("feedback mailto composed", slog.String("category", req.Category))

		render.JSON(w, r, FeedbackResponse{
			Response:   response.OK(),
			MailtoLink: link,
		})
	}
}
