package storeRegistration

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"sportsfest/internal/lib/api/response"
	"sportsfest/internal/lib/logger/sl"
	"sportsfest/internal/models"
	"sportsfest/internal/notify"
	"sportsfest/internal/offerings"
	"sportsfest/internal/payments"
)

const (
	EmailSent    = "sent"
	EmailFailed  = "failed"
	EmailSkipped = "skipped"
)

type RegistrationRequest struct {
	Sport              string          `json:"sport" validate:"required"`
	Category           string          `json:"category"`
	AthleticsEvent     string          `json:"athleticsEvent"`
	ShotPutSubCategory string          `json:"shotPutSubCategory"`
	Players            []models.Member `json:"players" validate:"required,min=1,dive"`
	Dept               string          `json:"dept"`
	Sem                string          `json:"sem"`
	Group              string          `json:"group"`
	NoOfPlayers        int             `json:"noOfPlayers" validate:"required,min=1"`
	Contact            string          `json:"contact" validate:"required"`
	AltContact         string          `json:"altContact"`
	OrderID            string          `json:"order_id"`
	PaymentID          string          `json:"payment_id"`
	PaymentSignature   string          `json:"payment_signature"`
	TeamLeaderEmail    string          `json:"teamLeaderEmail" validate:"omitempty,email"`
}

type RegistrationResponse struct {
	response.Response
	SrNo        int    `json:"sr_no,omitempty"`
	EmailStatus string `json:"email_status,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationStore
type RegistrationStore interface {
	AppendRegistration(sheetTitle string, reg models.Registration) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentVerifier
type PaymentVerifier interface {
	Verify(orderID, paymentID, signature string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfirmationMailer
type ConfirmationMailer interface {
	Enabled() bool
	SendConfirmation(to string, c notify.Confirmation) error
}

func New(log *slog.Logger, store RegistrationStore, verifier PaymentVerifier, mailer ConfirmationMailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.storeRegistration.New"

		log = log.With(slog.String("op", op))

		var req RegistrationRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded",
			slog.String("sport", req.Sport),
			slog.String("category", req.Category),
			slog.Int("players", len(req.Players)),
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

		// Оплата проверяется до любой записи в таблицу
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

		offering, ok := offerings.Get(req.Sport)
		if !ok {
			log.Error("unknown sport", slog.String("sport", req.Sport))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown sport"))
			return
		}

		sheetTitle, err := offerings.ResolveSheetTitle(offerings.SheetSelection{
			Sport:              req.Sport,
			Category:           req.Category,
			AthleticsEvent:     req.AthleticsEvent,
			ShotPutSubCategory: req.ShotPutSubCategory,
		})
		if err != nil {
			log.Error("failed to resolve sheet", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported sport/category combination"))
			return
		}

		sel := offerings.Selection{
			Category:    req.Category,
			PlayerCount: req.NoOfPlayers,
		}
		if req.AthleticsEvent != "" {
			sel.SubEvents = []string{req.AthleticsEvent}
		}

		bounds := offering.ResolveBounds(sel)
		if len(req.Players) < bounds.Min || len(req.Players) > bounds.Max {
			log.Error("player count out of range",
				slog.Int("players", len(req.Players)),
				slog.Int("min", bounds.Min),
				slog.Int("max", bounds.Max),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf(
				"player count must be between %d and %d", bounds.Min, bounds.Max)))
			return
		}

		if req.NoOfPlayers != len(req.Players) {
			log.Error("declared player count does not match players list",
				slog.Int("declared", req.NoOfPlayers),
				slog.Int("listed", len(req.Players)),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("noOfPlayers does not match players list"))
			return
		}

		contact := req.Contact
		if req.AltContact != "" {
			contact = req.Contact + " / " + req.AltContact
		}

		srNo, err := store.AppendRegistration(sheetTitle, models.Registration{
			Members:     req.Players,
			Contact:     contact,
			Group:       req.Group,
			NoOfPlayers: req.NoOfPlayers,
			PaymentID:   req.PaymentID,
		})
		if err != nil {
			log.Error("failed to store registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				"failed to store registration, please contact the organisers with your payment id"))
			return
		}

		log.Info("registration stored",
			slog.String("sheet", sheetTitle),
			slog.Int("sr_no", srNo),
		)

		emailStatus := EmailSkipped
		if req.TeamLeaderEmail != "" && mailer.Enabled() {
			err = mailer.SendConfirmation(req.TeamLeaderEmail, notify.Confirmation{
				EventTitle: offering.Title,
				SerialNo:   srNo,
				PaymentID:  req.PaymentID,
			})
			if err != nil {
				log.Error("failed to send confirmation email", sl.Err(err))
				emailStatus = EmailFailed
			} else {
				emailStatus = EmailSent
			}
		}

		responseOK(w, r, srNo, emailStatus)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, srNo int, emailStatus string) {
	render.JSON(w, r, RegistrationResponse{
		Response:    response.OK(),
		SrNo:        srNo,
		EmailStatus: emailStatus,
	})
}
