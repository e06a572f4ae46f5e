package getAllCategories

import (
	"log/slog"
	"net/http"

	"fundraiser/internal/lib/api/response"
	"fundraiser/internal/lib/logger/sl"
	"fundraiser/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesGetter
type CategoriesGetter interface {
	GetAllCategories() ([]models.Category, error)
}

func New(log *slog.Logger, getter CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.getAllCategories.New"

		log = log.With(slog.String("op", op))

		categories, err := getter.GetAllCategories()
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		log.Info("categories retrieved", slog.Int("count", len(categories)))

		render.JSON(w, r, categories)
	}
}
