package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInput is a raw name/quantity/price triple supplied by the merchant
type ItemInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// LineItem is an item stamped with the checkout currency at the time it was
// added. Immutable once added - a later currency change on the builder does
// not rewrite items already present.
type LineItem struct {
	Name     string          `validate:"required"`
	Quantity int             `validate:"gt=0"`
	Price    decimal.Decimal
	Currency string
}

// CheckoutRequest is the immutable shape submitted to PayPal, produced by
// CheckoutBuilder.Build
type CheckoutRequest struct {
	Description   string     `validate:"required"`
	Items         []LineItem `validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	Currency      string `validate:"required,len=3"`
	SuccessURL    string `validate:"required"`
	FailURL       string `validate:"required"`
	PaymentMethod string `validate:"required"`
	InvoiceNumber string
}

// CheckoutBuilder accumulates merchant inputs for one checkout attempt. Each
// setter returns the builder so attributes can be chained, and setters never
// fail - validation is deferred to Build. A builder is owned by a single
// attempt and discarded once the payment has been created or executed.
type CheckoutBuilder struct {
	description   string
	items         []LineItem
	subtotal      decimal.Decimal
	tax           decimal.Decimal
	shipping      decimal.Decimal
	total         decimal.Decimal
	currency      string
	successURL    string
	failURL       string
	paymentMethod string
	invoiceNumber string
}

// NewCheckoutBuilder returns a builder with currency EUR and payment method
// paypal preset
func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		currency:      "EUR",
		paymentMethod: "paypal",
	}
}

// SetPaymentDescription sets the description shown against the transaction
func (b *CheckoutBuilder) SetPaymentDescription(description string) *CheckoutBuilder {
	b.description = description
	return b
}

// SetItemList replaces the entire item collection. Each triple is stamped
// with the builder's current currency, so the currency must be set before
// the items for them to be consistent.
func (b *CheckoutBuilder) SetItemList(items []ItemInput) *CheckoutBuilder {
	b.items = make([]LineItem, 0, len(items))
	for _, item := range items {
		b.items = append(b.items, b.lineItem(item))
	}
	return b
}

// AddItem appends one item stamped with the builder's current currency
func (b *CheckoutBuilder) AddItem(item ItemInput) *CheckoutBuilder {
	b.items = append(b.items, b.lineItem(item))
	return b
}

// SetSubtotal sets the sum of the item totals
func (b *CheckoutBuilder) SetSubtotal(subtotal decimal.Decimal) *CheckoutBuilder {
	b.subtotal = subtotal
	return b
}

// SetTax sets the tax amount, included in the submission only when positive
func (b *CheckoutBuilder) SetTax(tax decimal.Decimal) *CheckoutBuilder {
	b.tax = tax
	return b
}

// SetShipping sets the shipping amount, included in the submission only when positive
func (b *CheckoutBuilder) SetShipping(shipping decimal.Decimal) *CheckoutBuilder {
	b.shipping = shipping
	return b
}

// SetTotal sets the total amount, which must equal subtotal+tax+shipping
// per PayPal semantics. Not verified here - PayPal rejects a mismatch.
func (b *CheckoutBuilder) SetTotal(total decimal.Decimal) *CheckoutBuilder {
	b.total = total
	return b
}

// SetCurrency sets the 3-letter currency code, e.g. "EUR", "USD"
func (b *CheckoutBuilder) SetCurrency(currency string) *CheckoutBuilder {
	b.currency = currency
	return b
}

// SetSuccessURL sets the URL the payer returns to after approving the payment
func (b *CheckoutBuilder) SetSuccessURL(successURL string) *CheckoutBuilder {
	b.successURL = successURL
	return b
}

// SetFailURL sets the URL the payer is sent to on cancellation
func (b *CheckoutBuilder) SetFailURL(failURL string) *CheckoutBuilder {
	b.failURL = failURL
	return b
}

// SetPaymentMethod overrides the default payment method of "paypal"
func (b *CheckoutBuilder) SetPaymentMethod(paymentMethod string) *CheckoutBuilder {
	b.paymentMethod = paymentMethod
	return b
}

// SetInvoiceNumber sets the merchant reference for this checkout
func (b *CheckoutBuilder) SetInvoiceNumber(invoiceNumber string) *CheckoutBuilder {
	b.invoiceNumber = invoiceNumber
	return b
}

// GetCurrency returns the currency new items will be stamped with
func (b *CheckoutBuilder) GetCurrency() string {
	return b.currency
}

// GetInvoiceNumber lazily generates an invoice number on first access and
// returns the same value on every subsequent call until it is overridden
// with SetInvoiceNumber
func (b *CheckoutBuilder) GetInvoiceNumber() string {
	if b.invoiceNumber == "" {
		b.invoiceNumber = uuid.NewString()
	}
	return b.invoiceNumber
}

func (b *CheckoutBuilder) lineItem(item ItemInput) LineItem {
	return LineItem{
		Name:     item.Name,
		Quantity: item.Quantity,
		Price:    item.Price,
		Currency: b.currency,
	}
}

var validate = validator.New()

// Build freezes the accumulated state into an immutable CheckoutRequest. The
// required fields are validated here rather than in the setters; an invalid
// builder yields an error and no partial value.
func (b *CheckoutBuilder) Build() (*CheckoutRequest, error) {
	items := make([]LineItem, len(b.items))
	copy(items, b.items)

	checkout := &CheckoutRequest{
		Description:   b.description,
		Items:         items,
		Subtotal:      b.subtotal,
		Tax:           b.tax,
		Shipping:      b.shipping,
		Total:         b.total,
		Currency:      b.currency,
		SuccessURL:    b.successURL,
		FailURL:       b.failURL,
		PaymentMethod: b.paymentMethod,
		InvoiceNumber: b.invoiceNumber,
	}

	if err := validate.Struct(checkout); err != nil {
		return nil, fmt.Errorf("invalid checkout request: [%v]", err)
	}
	if !checkout.Subtotal.IsPositive() {
		return nil, fmt.Errorf("invalid checkout request: subtotal not set")
	}
	if !checkout.Total.IsPositive() {
		return nil, fmt.Errorf("invalid checkout request: total not set")
	}

	return checkout, nil
}
