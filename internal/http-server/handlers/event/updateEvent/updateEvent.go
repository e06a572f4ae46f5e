package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/models"
	"fundraiser/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// EventRequest is a full-row overwrite: every column must be sent on every
// call. Zero-able columns are pointers with required so that 0 and false are
// accepted but omission is rejected instead of silently nulling the column.
// Description, latitude and longitude are nullable, so omitting them writes
// NULL.
type EventRequest struct {
	Name          string    `json:"name" validate:"required"`
	Description   *string   `json:"description"`
	Date          time.Time `json:"date" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	TicketPrice   *float64  `json:"ticket_price" validate:"required,gte=0"`
	GoalAmount    *float64  `json:"goal_amount" validate:"required,gte=0"`
	CurrentAmount *float64  `json:"current_amount" validate:"required,gte=0"`
	CategoryID    int       `json:"category_id" validate:"required"`
	IsActive      *bool     `json:"is_active" validate:"required"`
}

type EventResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(eventID int, event models.Event) error
}

func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req EventRequest

		err = render.DecodeJSON(r.Body, &req)
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

		err = updater.UpdateEvent(eventID, models.Event{
			Name:          req.Name,
			Description:   req.Description,
			Date:          req.Date,
			Location:      req.Location,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
			TicketPrice:   *req.TicketPrice,
			GoalAmount:    *req.GoalAmount,
			CurrentAmount: *req.CurrentAmount,
			CategoryID:    req.CategoryID,
			IsActive:      *req.IsActive,
		})
		if err != nil {
			log.Error("failed to update event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Message:  "Event updated successfully",
		})
	}
}
