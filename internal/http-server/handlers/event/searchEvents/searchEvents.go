package searchEvents

import (
	"log/slog"
	"net/http"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsSearcher
type EventsSearcher interface {
	SearchEvents(category, location, date *string) ([]models.Event, error)
}

// New searches active events. All three filters are optional and
// conjunctive; with none set the result matches the plain listing.
func New(log *slog.Logger, searcher EventsSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.searchEvents.New"

		log = log.With(slog.String("op", op))

		var category, location, date *string

		if v := r.URL.Query().Get("category"); v != "" {
			category = &v
		}
		if v := r.URL.Query().Get("location"); v != "" {
			location = &v
		}
		if v := r.URL.Query().Get("date"); v != "" {
			date = &v
		}

		events, err := searcher.SearchEvents(category, location, date)
		if err != nil {
			log.Error("failed to search events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search events"))
			return
		}

		log.Info("events search completed", slog.Int("count", len(events)))

		render.JSON(w, r, events)
	}
}
