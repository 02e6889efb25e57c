package models

import "github.com/shopspring/decimal"

// IncomingCheckoutRequest is the data received in the body of the incoming
// request to start a checkout
type IncomingCheckoutRequest struct {
	Description   string              `json:"description"  validate:"required"`
	Items         []IncomingItem      `json:"items"        validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal     `json:"subtotal"     validate:"required"`
	Tax           decimal.Decimal     `json:"tax"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Total         decimal.Decimal     `json:"total"        validate:"required"`
	Currency      string              `json:"currency"`
	SuccessURL    string              `json:"success_url"  validate:"required,url"`
	FailURL       string              `json:"fail_url"     validate:"required,url"`
	PaymentMethod string              `json:"payment_method"`
	InvoiceNumber string              `json:"invoice_number"`
}

// IncomingItem is one name/quantity/price triple of an incoming checkout
type IncomingItem struct {
	Name     string          `json:"name"     validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
}

// CheckoutResourceRest is returned once a pending payment has been created
// with PayPal. The caller redirects the payer to the approval URL.
type CheckoutResourceRest struct {
	PaymentID   string `json:"payment_id"`
	State       string `json:"state,omitempty"`
	ApprovalURL string `json:"approval_url"`
}
