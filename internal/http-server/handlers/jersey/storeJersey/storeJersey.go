package storeJersey

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"sportsfest/internal/lib/api/response"
	"sportsfest/internal/lib/logger/sl"
	"sportsfest/internal/models"
	"sportsfest/internal/payments"
)

type JerseyRequest struct {
	NameOnJersey     string `json:"nameOnJersey" validate:"required"`
	NumberOnJersey   string `json:"numberOnJersey" validate:"required"`
	Department       string `json:"department" validate:"required"`
	Size             string `json:"size" validate:"required,oneof=S M L XL XXL"`
	OrderID          string `json:"order_id"`
	PaymentID        string `json:"payment_id"`
	PaymentSignature string `json:"payment_signature"`
}

type JerseyResponse struct {
	response.Response
	SrNo int `json:"sr_no,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JerseyStore
type JerseyStore interface {
	AppendJersey(order models.JerseyOrder) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentVerifier
type PaymentVerifier interface {
	Verify(orderID, paymentID, signature string) error
}

func New(log *slog.Logger, store JerseyStore, verifier PaymentVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jersey.storeJersey.New"

		log = log.With(slog.String("op", op))

		var req JerseyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded",
			slog.String("name", req.NameOnJersey),
			slog.String("size", req.Size),
		)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if err = verifier.Verify(req.OrderID, req.PaymentID, req.PaymentSignature); err != nil {
			log.Error("payment verification failed", sl.Err(err))

			if errors.Is(err, payments.ErrMissingFields) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("missing payment fields"))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid payment signature"))
			return
		}

		srNo, err := store.AppendJersey(models.JerseyOrder{
			NameOnJersey:   req.NameOnJersey,
			NumberOnJersey: req.NumberOnJersey,
			Department:     req.Department,
			Size:           req.Size,
			PaymentID:      req.PaymentID,
		})
		if err != nil {
			log.Error("failed to store jersey order", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				"failed to store jersey order, please contact the organisers with your payment id"))
			return
		}

		log.Info("jersey order stored", slog.Int("sr_no", srNo))

		responseOK(w, r, srNo)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, srNo int) {
	render.JSON(w, r, JerseyResponse{
		Response: response.OK(),
		SrNo:     srNo,
	})
}
