package email

import "adornia-be/internal/cart"

// Template discriminators accepted by the send-email endpoint.
const (
	TemplateBusinessOrderNotification = "business_order_notification"
	TemplateCustomerOrderConfirmation = "customer_order_confirmation"
)

type ShippingAddress struct {
	Address    string `json:"address"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Delivery int64 `json:"delivery"`
	Total    int64 `json:"total"`
}

type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

// OrderEmailData feeds both the business notification and the customer
// confirmation templates.
type OrderEmailData struct {
	OrderNumber      string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ShippingAddress  ShippingAddress
	Items            []cart.LineItem
	Totals           Totals
	DeliveryMethod   string
	DeliveryEstimate string
	OrderDate        string
	PaymentReference string
	PaymentMethod    string
	PaymentStatus    string
	BankDetails      *BankDetails
}

// ConsultationData carries a bespoke-order consultation request for a
// made-to-order product: the product being asked about plus the customer's
// contact details and free-form message.
type ConsultationData struct {
	ProductName   string `json:"productName"`
	ProductPrice  int64  `json:"productPrice"`
	SelectedColor string `json:"selectedColor,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Message       string `json:"message,omitempty"`
	RequestedAt   string `json:"requestedAt,omitempty"`
}

type SubscriptionData struct {
	SubscriberEmail string
	Source          string
	Timestamp       string
	UserAgent       string
	IP              string
}
