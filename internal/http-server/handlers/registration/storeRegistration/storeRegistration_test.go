package storeRegistration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportsfest/internal/http-server/handlers/registration/storeRegistration/mocks"
	"sportsfest/internal/lib/logger/handlers/slogdiscard"
	"sportsfest/internal/models"
	"sportsfest/internal/notify"
	"sportsfest/internal/payments"
)

func teamOf(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, models.Member{
			Name: fmt.Sprintf("Player %d", i),
			Dept: "CO",
			Sem:  "5",
		})
	}
	return members
}

func footballRequest() RegistrationRequest {
	return RegistrationRequest{
		Sport:            "football",
		Players:          teamOf(11),
		Group:            "A",
		NoOfPlayers:      11,
		Contact:          "9876543210",
		AltContact:       "9123456780",
		OrderID:          "order_1",
		PaymentID:        "pay_1",
		PaymentSignature: "sig_1",
		TeamLeaderEmail:  "leader@example.com",
	}
}

func TestStoreRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		request        func() RegistrationRequest
		rawBody        string
		mockSetup      func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success team registration",
			request: footballRequest,
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
				store.On("AppendRegistration", "Football", mock.MatchedBy(func(reg models.Registration) bool {
					return len(reg.Members) == 11 &&
						reg.Contact == "9876543210 / 9123456780" &&
						reg.NoOfPlayers == 11 &&
						reg.PaymentID == "pay_1"
				})).Return(7, nil)
				mailer.On("Enabled").Return(true)
				mailer.On("SendConfirmation", "leader@example.com", notify.Confirmation{
					EventTitle: "Football",
					SerialNo:   7,
					PaymentID:  "pay_1",
				}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"sr_no":7,"email_status":"sent"}`,
		},
		{
			name: "Relay registration resolves gendered sheet",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.Sport = "athletics"
				req.Category = "boys"
				req.AthleticsEvent = "Relay"
				req.Players = teamOf(4)
				req.NoOfPlayers = 4
				req.TeamLeaderEmail = ""
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
				store.On("AppendRegistration", "Relay(Boys)", mock.MatchedBy(func(reg models.Registration) bool {
					return len(reg.Members) == 4
				})).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"sr_no":1,"email_status":"skipped"}`,
		},
		{
			name: "Email failure does not fail the request",
			request: func() RegistrationRequest {
				return footballRequest()
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
				store.On("AppendRegistration", "Football", mock.Anything).Return(8, nil)
				mailer.On("Enabled").Return(true)
				mailer.On("SendConfirmation", "leader@example.com", mock.Anything).
					Return(errors.New("smtp timeout"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"sr_no":8,"email_status":"failed"}`,
		},
		{
			name:    "Email skipped when mailer disabled",
			request: footballRequest,
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
				store.On("AppendRegistration", "Football", mock.Anything).Return(9, nil)
				mailer.On("Enabled").Return(false)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"sr_no":9,"email_status":"skipped"}`,
		},
		{
			name: "Missing payment fields",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.PaymentSignature = ""
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "").Return(payments.ErrMissingFields)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"missing payment fields"}`,
		},
		{
			name:    "Invalid signature",
			request: footballRequest,
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(payments.ErrInvalidSignature)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid payment signature"}`,
		},
		{
			name: "Unknown sport",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.Sport = "quidditch"
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"unknown sport"}`,
		},
		{
			name: "Missing category for gendered sport",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.Sport = "kabaddi"
				req.Players = teamOf(7)
				req.NoOfPlayers = 7
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"unsupported sport/category combination"}`,
		},
		{
			name: "Player count below minimum",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.Players = teamOf(5)
				req.NoOfPlayers = 5
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"player count must be between 11 and 15"}`,
		},
		{
			name: "Declared count does not match players list",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.NoOfPlayers = 12
				return req
			},
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"noOfPlayers does not match players list"}`,
		},
		{
			name:    "Storage failure after verified payment",
			request: footballRequest,
			mockSetup: func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {
				verifier.On("Verify", "order_1", "pay_1", "sig_1").Return(nil)
				store.On("AppendRegistration", "Football", mock.Anything).
					Return(0, errors.New("sheets unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to store registration, please contact the organisers with your payment id"}`,
		},
		{
			name:           "Invalid JSON",
			rawBody:        `invalid json`,
			mockSetup:      func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"failed to decode request"}`,
		},
		{
			name: "Missing sport",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.Sport = ""
				return req
			},
			mockSetup:      func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Sport")
			},
		},
		{
			name: "Invalid team leader email",
			request: func() RegistrationRequest {
				req := footballRequest()
				req.TeamLeaderEmail = "not-an-email"
				return req
			},
			mockSetup:      func(store *mocks.RegistrationStore, verifier *mocks.PaymentVerifier, mailer *mocks.ConfirmationMailer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "TeamLeaderEmail")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewRegistrationStore(t)
			verifier := mocks.NewPaymentVerifier(t)
			mailer := mocks.NewConfirmationMailer(t)
			tc.mockSetup(store, verifier, mailer)

			handler := New(logger, store, verifier, mailer)

			var body []byte
			if tc.rawBody != "" {
				body = []byte(tc.rawBody)
			} else {
				var err error
				body, err = json.Marshal(tc.request())
				require.NoError(t, err)
			}

			req, err := http.NewRequest("POST", "/api/store-registration", bytes.NewReader(body))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
