package createOrder

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"sportsfest/internal/lib/api/response"
	"sportsfest/internal/lib/logger/sl"
	"sportsfest/internal/offerings"
)

type OrderRequest struct {
	// Сумма в пайсах, как того требует Razorpay
	Amount   int    `json:"amount" validate:"required,min=1"`
	Currency string `json:"currency" validate:"omitempty,oneof=INR"`

	// Optional selection echo. When the client names what it is paying for,
	// the fee is recomputed here and a mismatched amount is rejected instead
	// of trusted.
	Sport           string   `json:"sport"`
	Category        string   `json:"category"`
	AthleticsEvents []string `json:"athleticsEvents"`
	NoOfPlayers     int      `json:"noOfPlayers"`
}

type OrderResponse struct {
	response.Response
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderCreator
type OrderCreator interface {
	CreateOrder(amount int, currency, receipt string) (string, error)
}

func New(log *slog.Logger, orders OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.createOrder.New"

		log = log.With(slog.String("op", op))

		var req OrderRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int("amount", req.Amount), slog.String("sport", req.Sport))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if req.Currency == "" {
			req.Currency = "INR"
		}

		if req.Sport != "" {
			offering, ok := offerings.Get(req.Sport)
			if !ok {
				log.Error("unknown sport", slog.String("sport", req.Sport))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown sport"))
				return
			}

			fee, err := offering.ComputeFee(offerings.Selection{
				Category:    req.Category,
				SubEvents:   req.AthleticsEvents,
				PlayerCount: req.NoOfPlayers,
			})
			if err != nil {
				log.Error("failed to compute fee", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid selection"))
				return
			}

			if req.Amount != fee*100 {
				log.Error("amount does not match computed fee",
					slog.Int("amount", req.Amount),
					slog.Int("fee_paise", fee*100),
				)
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("amount does not match the registration fee"))
				return
			}
		}

		orderID, err := orders.CreateOrder(req.Amount, req.Currency, req.Sport)
		if err != nil {
			log.Error("failed to create order", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create order"))
			return
		}

		log.Info("order created", slog.String("order_id", orderID))

		responseOK(w, r, orderID, req.Amount, req.Currency)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, orderID string, amount int, currency string) {
	render.JSON(w, r, OrderResponse{
		Response: response.OK(),
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
	})
}
