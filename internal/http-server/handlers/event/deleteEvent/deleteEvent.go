package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
	Message string `json:"message"`
}

// ConflictResponse reports how many registrations block the delete.
type ConflictResponse struct {
	response.Response
	RegistrationsCount int `json:"registrations_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(eventID int) (int, error)
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

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

		count, err := deleter.DeleteEvent(eventID)
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))

			if errors.Is(err, storage.ErrHasRegistrations) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, ConflictResponse{
					Response:           response.Error("Cannot delete event with existing registrations"),
					RegistrationsCount: count,
				})
				return
			}

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Message:  "Event deleted successfully",
		})
	}
}
