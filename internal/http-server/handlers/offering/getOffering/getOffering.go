package getOffering

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"sportsfest/internal/lib/api/response"
	"sportsfest/internal/offerings"
)

type OfferingResponse struct {
	response.Response
	Offering offerings.Offering `json:"offering"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offering.getOffering.New"

		log = log.With(slog.String("op", op))

		key := chi.URLParam(r, "key")
		if key == "" {
			log.Error("offering key is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("offering key is required"))
			return
		}

		offering, ok := offerings.Get(key)
		if !ok {
			log.Error("offering not found", slog.String("key", key))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("offering not found"))
			return
		}

		log.Info("offering retrieved", slog.String("key", key))

		render.JSON(w, r, OfferingResponse{
			Response: response.OK(),
			Offering: offering,
		})
	}
}
