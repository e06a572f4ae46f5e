package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	TicketPrice float64   `json:"ticket_price" validate:"gte=0"`
	GoalAmount  float64   `json:"goal_amount" validate:"gte=0"`
	CategoryID  int       `json:"category_id" validate:"required"`
}

type EventResponse struct {
	response.Response
	Message string `json:"message"`
	ID      int    `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (int, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

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

		eventID, err := creator.CreateEvent(models.Event{
			Name:        req.Name,
			Description: req.Description,
			Date:        req.Date,
			Location:    req.Location,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			TicketPrice: req.TicketPrice,
			GoalAmount:  req.GoalAmount,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.Int("id", eventID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Message:  "Event created successfully",
			ID:       eventID,
		})
	}
}
