package createRegistration

import (
	"errors"
	"log/slog"
	"net/http"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegistrationRequest struct {
	EventID      int     `json:"event_id" validate:"required"`
	FullName     string  `json:"full_name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone"`
	TicketsCount int     `json:"tickets_count" validate:"required,gt=0"`
}

type RegistrationResponse struct {
	response.Response
	Message     string  `json:"message"`
	ID          int     `json:"id"`
	TotalAmount float64 `json:"total_amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCreator
type RegistrationCreator interface {
	CreateRegistration(eventID int, fullName, email string, phone *string, ticketsCount int) (int, float64, error)
}

func New(log *slog.Logger, creator RegistrationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log = log.With(slog.String("op", op))

		var req RegistrationRequest

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

		log = log.With(slog.Int("event_id", req.EventID))

		regID, totalAmount, err := creator.CreateRegistration(req.EventID, req.FullName, req.Email, req.Phone, req.TicketsCount)
		if err != nil {
			log.Error("failed to create registration", sl.Err(err))

			if errors.Is(err, storage.ErrAlreadyRegistered) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("You have already registered for this event"))
				return
			}

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create registration"))
			return
		}

		log.Info("registration created",
			slog.Int("id", regID),
			slog.Float64("total_amount", totalAmount),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegistrationResponse{
			Response:    response.OK(),
			Message:     "Registration successful",
			ID:          regID,
			TotalAmount: totalAmount,
		})
	}
}
