package email

import (
	"bytes"
	"html/template"
)

var funcs = template.FuncMap{
	"naira": formatNaira,
}

func formatNaira(v int64) string {
	// Thousands-grouped, no decimals: prices are whole naira.
	s := []byte{}
	n := v
	if n < 0 {
		n = -n
	}
	digits := []byte{}
	for {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			s = append(s, ',')
		}
		s = append(s, d)
	}
	if v < 0 {
		return "-₦" + string(s)
	}
	return "₦" + string(s)
}

var businessOrderTmpl = template.Must(template.New("business_order").Funcs(funcs).Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>Order {{.OrderNumber}} — {{.PaymentStatus}}</h2>
  <p><strong>Date:</strong> {{.OrderDate}}<br>
     <strong>Payment:</strong> {{.PaymentMethod}}{{if .PaymentReference}} (ref {{.PaymentReference}}){{end}}</p>

  <h3>Customer</h3>
  <p>{{.CustomerName}}<br>{{.CustomerEmail}}<br>{{.CustomerPhone}}</p>

  <h3>Shipping address</h3>
  <p>{{.ShippingAddress.Address}}{{if .ShippingAddress.Apartment}}, {{.ShippingAddress.Apartment}}{{end}}<br>
     {{.ShippingAddress.City}}, {{.ShippingAddress.State}} {{.ShippingAddress.PostalCode}}<br>
     {{.ShippingAddress.Country}}</p>

  <h3>Items</h3>
  <table style="width:100%;border-collapse:collapse">
    {{range .Items}}
    <tr style="border-bottom:1px solid #e5e7eb">
      <td style="padding:6px 0">{{.Name}}{{if .Size}} — {{.Size}}{{end}}{{if .Color}}, {{.Color}}{{end}}</td>
      <td style="text-align:center">×{{.Quantity}}</td>
      <td style="text-align:right">{{naira .Price}}</td>
    </tr>
    {{end}}
  </table>

  <p style="text-align:right">
    Subtotal: {{naira .Totals.Subtotal}}<br>
    Delivery ({{.DeliveryMethod}}): {{naira .Totals.Delivery}}<br>
    <strong>Total: {{naira .Totals.Total}}</strong>
  </p>
</div>
`))

var customerOrderTmpl = template.Must(template.New("customer_order").Funcs(funcs).Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>Order <strong>#{{.OrderNumber}}</strong> — {{.OrderDate}}</p>

  {{if .BankDetails}}
  <div style="border:1px solid #f59e0b;border-radius:8px;padding:16px;margin:16px 0">
    <h3>Complete your payment</h3>
    <p>Please transfer the exact amount to the account below and include
       "<strong>#{{.OrderNumber}}</strong>" in the transfer description.</p>
    <p>Bank: <strong>{{.BankDetails.BankName}}</strong><br>
       Account name: <strong>{{.BankDetails.AccountName}}</strong><br>
       Account number: <strong>{{.BankDetails.AccountNumber}}</strong><br>
       Amount: <strong>{{naira .Totals.Total}}</strong></p>
    <p>We will verify your payment within 24 hours, then process and ship
       your order.</p>
  </div>
  {{else}}
  <div style="border:1px solid #10b981;border-radius:8px;padding:16px;margin:16px 0">
    <h3>Payment confirmed</h3>
    <p>Your payment of {{naira .Totals.Total}} has been processed
       ({{.PaymentMethod}}, ref {{.PaymentReference}}). Your order is being
       prepared for delivery.</p>
  </div>
  {{end}}

  <h3>Your items</h3>
  <table style="width:100%;border-collapse:collapse">
    {{range .Items}}
    <tr style="border-bottom:1px solid #e5e7eb">
      <td style="padding:6px 0">{{.Name}}{{if .Size}} — {{.Size}}{{end}}{{if .Color}}, {{.Color}}{{end}}</td>
      <td style="text-align:center">×{{.Quantity}}</td>
      <td style="text-align:right">{{naira .Price}}</td>
    </tr>
    {{end}}
  </table>

  <p style="text-align:right">
    Subtotal: {{naira .Totals.Subtotal}}<br>
    Delivery: {{naira .Totals.Delivery}}<br>
    <strong>Total: {{naira .Totals.Total}}</strong>
  </p>

  <p>Delivery: {{.DeliveryMethod}}{{if .DeliveryEstimate}} ({{.DeliveryEstimate}}){{end}}.</p>
</div>
`))

var consultationRequestTmpl = template.Must(template.New("consultation_request").Funcs(funcs).Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>New custom order consultation request</h2>

  <h3>Product</h3>
  <p>{{.ProductName}}<br>
     Price: {{naira .ProductPrice}}<br>
     Color: {{if .SelectedColor}}{{.SelectedColor}}{{else}}To be discussed{{end}}</p>

  <h3>Customer</h3>
  <p>{{.CustomerName}}<br>
     {{.CustomerEmail}}<br>
     {{if .CustomerPhone}}{{.CustomerPhone}}{{else}}No phone provided{{end}}</p>

  <h3>Message</h3>
  <p style="white-space:pre-wrap">{{if .Message}}{{.Message}}{{else}}No additional message provided.{{end}}</p>

  <h3>Next steps</h3>
  <ol>
    <li>Contact the customer within 24 hours</li>
    <li>Schedule a measurement consultation</li>
    <li>Discuss customization options</li>
    <li>Provide timeline and final pricing</li>
  </ol>

  <p style="color:#6b7280;font-size:12px">Sent from the product page{{if .RequestedAt}} on {{.RequestedAt}}{{end}}.</p>
</div>
`))

var consultationConfirmationTmpl = template.Must(template.New("consultation_confirmation").Funcs(funcs).Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>Thank you for your custom order request!</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>We received your consultation request for
     <strong>{{.ProductName}}</strong> and we're excited to create something
     special just for you.</p>

  <div style="border:1px solid #3b82f6;border-radius:8px;padding:16px;margin:16px 0">
    <h3>What's next?</h3>
    <ul>
      <li>Our team will contact you within 24 hours</li>
      <li>We'll schedule a consultation to discuss your requirements</li>
      <li>You'll get a timeline and final pricing before we start</li>
    </ul>
  </div>
</div>
`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h1>Welcome aboard!</h1>
  <p>Thanks for joining the Adornia circle. Expect early access to new
     collections, member-only offers, and styling tips.</p>
  <p><a href="{{.StoreURL}}">Start shopping</a></p>
  <p style="color:#6b7280;font-size:12px">You received this email because you
     subscribed to our newsletter.</p>
</div>
`))

var subscriptionNoticeTmpl = template.Must(template.New("subscription_notice").Parse(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>New newsletter subscriber</h2>
  <p>Email: <strong>{{.SubscriberEmail}}</strong><br>
     Source: {{.Source}}<br>
     Time: {{.Timestamp}}<br>
     User agent: {{.UserAgent}}<br>
     IP: {{.IP}}</p>
</div>
`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
