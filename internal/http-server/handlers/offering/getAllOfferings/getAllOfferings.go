package getAllOfferings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"sportsfest/internal/lib/api/response"
	"sportsfest/internal/offerings"
)

type OfferingsResponse struct {
	response.Response
	Offerings []offerings.Offering `json:"offerings"`
}

// The catalog is compiled in, so unlike the submission handlers there is no
// collaborator here and no failure path.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offering.getAllOfferings.New"

		log = log.With(slog.String("op", op))

		all := offerings.All()

		log.Info("offerings retrieved successfully", slog.Int("count", len(all)))

		render.JSON(w, r, OfferingsResponse{
			Response:  response.OK(),
			Offerings: all,
		})
	}
}
