package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adornia-be/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func orderDataFixture() OrderEmailData {
	return OrderEmailData{
		OrderNumber:   "AS12345678",
		CustomerName:  "Ada Obi",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+2348012345678",
		ShippingAddress: ShippingAddress{
			Address: "12 Airport Road",
			City:    "Benin City",
			State:   "Edo",
			Country: "Nigeria",
		},
		Items: []cart.LineItem{
			{Name: "Ankara Two-Piece", Size: "M", Color: "Red", Price: 45000, Quantity: 2},
		},
		Totals:         Totals{Subtotal: 90000, Delivery: 5500, Total: 95500},
		DeliveryMethod: "GIGL Express",
		OrderDate:      "22 August 2026",
		PaymentMethod:  "Card Payment (Paystack)",
		PaymentStatus:  "Paid",
	}
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦0", formatNaira(0))
	assert.Equal(t, "₦950", formatNaira(950))
	assert.Equal(t, "₦95,500", formatNaira(95500))
	assert.Equal(t, "₦1,250,000", formatNaira(1250000))
	assert.Equal(t, "-₦4,500", formatNaira(-4500))
}

func TestBusinessOrderTemplate(t *testing.T) {
	html, err := render(businessOrderTmpl, orderDataFixture())

	assert.NoError(t, err)
	assert.Contains(t, html, "AS12345678")
	assert.Contains(t, html, "Ada Obi")
	assert.Contains(t, html, "₦45,000")
	assert.Contains(t, html, "₦95,500")
	assert.Contains(t, html, "GIGL Express")
}

func TestCustomerOrderTemplate_PaidReceipt(t *testing.T) {
	html, err := render(customerOrderTmpl, orderDataFixture())

	assert.NoError(t, err)
	assert.Contains(t, html, "Thank you for your order")
	assert.NotContains(t, html, "Complete your payment")
}

func TestCustomerOrderTemplate_BankTransferInstructions(t *testing.T) {
	data := orderDataFixture()
	data.PaymentStatus = "Awaiting Payment"
	data.BankDetails = &BankDetails{
		BankName:      "Zenith Bank",
		AccountName:   "Adornia Sparks Ltd",
		AccountNumber: "1012345678",
	}

	html, err := render(customerOrderTmpl, data)

	assert.NoError(t, err)
	assert.Contains(t, html, "Complete your payment")
	assert.Contains(t, html, "Zenith Bank")
	assert.Contains(t, html, "1012345678")
}

type recordingMailer struct {
	mock.Mock
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

func TestSender_SubjectsAndRecipients(t *testing.T) {
	mailer := new(recordingMailer)
	s := NewSender(mailer, "orders@adornia.shop", "https://adornia.shop")
	data := orderDataFixture()

	mailer.On("Send", mock.Anything, "orders@adornia.shop",
		"[Adornia] Paid - Order #AS12345678", mock.Anything).Return(nil).Once()
	assert.NoError(t, s.SendBusinessOrderNotification(context.Background(), data))

	mailer.On("Send", mock.Anything, "ada@example.com",
		"Order Confirmed - #AS12345678 | Adornia", mock.Anything).Return(nil).Once()
	assert.NoError(t, s.SendCustomerOrderConfirmation(context.Background(), data))

	data.BankDetails = &BankDetails{BankName: "Zenith Bank"}
	mailer.On("Send", mock.Anything, "ada@example.com",
		"Complete Your Payment - Order #AS12345678 | Adornia", mock.Anything).Return(nil).Once()
	assert.NoError(t, s.SendCustomerOrderConfirmation(context.Background(), data))

	mailer.AssertExpectations(t)
}

func consultationFixture() ConsultationData {
	return ConsultationData{
		ProductName:   "Bespoke Agbada",
		ProductPrice:  150000,
		SelectedColor: "Ivory",
		CustomerName:  "Ada Obi",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+2348012345678",
		Message:       "I need it before December 12th.",
	}
}

func TestSendConsultationRequest(t *testing.T) {
	mailer := new(recordingMailer)
	s := NewSender(mailer, "orders@adornia.shop", "https://adornia.shop")

	var businessHTML string
	mailer.On("Send", mock.Anything, "orders@adornia.shop",
		"Custom Order Request - Bespoke Agbada", mock.Anything).
		Run(func(args mock.Arguments) { businessHTML = args.String(3) }).
		Return(nil).Once()
	mailer.On("Send", mock.Anything, "ada@example.com",
		"Consultation Request Received - Bespoke Agbada", mock.Anything).
		Return(nil).Once()

	assert.NoError(t, s.SendConsultationRequest(context.Background(), consultationFixture()))

	mailer.AssertExpectations(t)
	assert.Contains(t, businessHTML, "₦150,000")
	assert.Contains(t, businessHTML, "Ivory")
	assert.Contains(t, businessHTML, "before December 12th")
}

func TestSendConsultationRequest_DefaultsForOptionalFields(t *testing.T) {
	mailer := new(recordingMailer)
	s := NewSender(mailer, "orders@adornia.shop", "https://adornia.shop")

	data := consultationFixture()
	data.SelectedColor = ""
	data.CustomerPhone = ""
	data.Message = ""

	var businessHTML string
	mailer.On("Send", mock.Anything, "orders@adornia.shop", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { businessHTML = args.String(3) }).
		Return(nil).Once()
	mailer.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Return(nil).Once()

	assert.NoError(t, s.SendConsultationRequest(context.Background(), data))
	assert.Contains(t, businessHTML, "To be discussed")
	assert.Contains(t, businessHTML, "No phone provided")
	assert.Contains(t, businessHTML, "No additional message provided.")
}

func TestSendConsultationRequest_ConfirmationFailureTolerated(t *testing.T) {
	mailer := new(recordingMailer)
	s := NewSender(mailer, "orders@adornia.shop", "https://adornia.shop")

	mailer.On("Send", mock.Anything, "orders@adornia.shop", mock.Anything, mock.Anything).
		Return(nil).Once()
	mailer.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	assert.NoError(t, s.SendConsultationRequest(context.Background(), consultationFixture()))
}

func TestSendConsultationRequest_BusinessFailurePropagates(t *testing.T) {
	mailer := new(recordingMailer)
	s := NewSender(mailer, "orders@adornia.shop", "https://adornia.shop")

	mailer.On("Send", mock.Anything, "orders@adornia.shop", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	assert.Error(t, s.SendConsultationRequest(context.Background(), consultationFixture()))
	mailer.AssertNumberOfCalls(t, "Send", 1)
}

func TestHTTPMailer_Send(t *testing.T) {
	var got sendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	m := &httpMailer{
		apiKey:  "re_test_key",
		from:    "noreply@adornia.shop",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	err := m.Send(context.Background(), "ada@example.com", "Hello", "<p>Hi</p>")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "noreply@adornia.shop", got.From)
	assert.Equal(t, []string{"ada@example.com"}, got.To)
	assert.Equal(t, "Hello", got.Subject)
}

func TestHTTPMailer_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := &httpMailer{
		apiKey:  "bad",
		from:    "noreply@adornia.shop",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	err := m.Send(context.Background(), "ada@example.com", "Hello", "<p>Hi</p>")
	assert.Error(t, err)
}
