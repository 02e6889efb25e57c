package models

// Payer identifies the funding source for a payment
type Payer struct {
	PaymentMethod string `json:"payment_method"`
}

// Item is a single line item within a transaction. Quantity and price are
// transmitted as strings per the v1 Payments API contract.
type Item struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// ItemList wraps the items of a transaction
type ItemList struct {
	Items []Item `json:"items"`
}

// Details breaks an amount down into its parts. Tax and shipping must be
// absent from the payload entirely when zero - some processors reject
// explicit zero detail fields.
type Details struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax,omitempty"`
	Shipping string `json:"shipping,omitempty"`
}

// Amount is the total charged for a transaction
type Amount struct {
	Currency string   `json:"currency"`
	Total    string   `json:"total"`
	Details  *Details `json:"details,omitempty"`
}

// Transaction carries the amount, items and merchant reference of a payment
type Transaction struct {
	Amount        *Amount   `json:"amount"`
	ItemList      *ItemList `json:"item_list,omitempty"`
	Description   string    `json:"description,omitempty"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`
}

// RedirectURLs tells PayPal where to send the payer after approval or cancellation
type RedirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

// Link is a hypermedia link returned on a payment resource. The approval
// link carries rel "approval_url".
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// Payment is the v1 payment resource, used both as the outgoing creation
// request and as the resource returned by PayPal
type Payment struct {
	ID           string        `json:"id,omitempty"`
	Intent       string        `json:"intent"`
	State        string        `json:"state,omitempty"`
	Payer        *Payer        `json:"payer,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	RedirectURLs *RedirectURLs `json:"redirect_urls,omitempty"`
	CreateTime   string        `json:"create_time,omitempty"`
	Links        []Link        `json:"links,omitempty"`
}

// PaymentExecution finalizes an approved payment with the returning payer's id
type PaymentExecution struct {
	PayerID string `json:"payer_id"`
}
