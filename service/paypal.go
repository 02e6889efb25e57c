package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/plutov/paypal/v4"
	"github.com/xanweb/paypal-checkout-api/config"
	"github.com/xanweb/paypal-checkout-api/models"
)

const paymentsPath = "/v1/payments/payment"

// PayPalService orchestrates the two-phase hosted checkout against PayPal's
// v1 Payments API: create a pending payment to obtain an approval link, then
// execute it once the payer returns
type PayPalService struct {
	Connection Connector
	Config     config.Config
}

// CreatePayment submits the built checkout to PayPal with intent "sale" and
// returns the approval URL the payer must be redirected to. Every failure is
// recorded on the returned error list; callers must check Has before using
// the URL. No stage is retried.
func (pp *PayPalService) CreatePayment(ctx context.Context, builder *CheckoutBuilder) (string, ResponseType, *models.ErrorList) {
	errs := models.NewErrorList()

	conn := pp.Connection.Connect(ctx, errs)
	if errs.Has() {
		return "", Error, errs
	}

	checkout, err := builder.Build()
	if err != nil {
		errs.Add(err)
		return "", InvalidData, errs
	}

	items := make([]models.Item, 0, len(checkout.Items))
	for _, item := range checkout.Items {
		items = append(items, models.Item{
			Name:     item.Name,
			Currency: item.Currency,
			Quantity: strconv.Itoa(item.Quantity),
			Price:    item.Price.StringFixed(2),
		})
	}

	details := &models.Details{
		Subtotal: checkout.Subtotal.StringFixed(2),
	}
	if checkout.Tax.IsPositive() {
		details.Tax = checkout.Tax.StringFixed(2)
	}
	if checkout.Shipping.IsPositive() {
		details.Shipping = checkout.Shipping.StringFixed(2)
	}

	payment := &models.Payment{
		Intent: "sale",
		Payer: &models.Payer{
			PaymentMethod: checkout.PaymentMethod,
		},
		Transactions: []models.Transaction{
			{
				Amount: &models.Amount{
					Currency: checkout.Currency,
					Total:    checkout.Total.StringFixed(2),
					Details:  details,
				},
				ItemList:    &models.ItemList{Items: items},
				Description: checkout.Description,
				// Every submission is stamped with a fresh token, not the
				// builder's stored invoice number.
				InvoiceNumber: uuid.NewString(),
			},
		},
		RedirectURLs: &models.RedirectURLs{
			ReturnURL: checkout.SuccessURL,
			CancelURL: checkout.FailURL,
		},
	}

	created := &models.Payment{}
	if err = pp.send(ctx, conn, "POST", conn.APIBase+paymentsPath, payment, created); err != nil {
		addPayPalError(errs, fmt.Errorf("error creating payment: [%w]", err))
		return "", Error, errs
	}

	approvalURL := approvalLink(created.Links)
	if approvalURL == "" {
		errs.AddMessage("no approval link returned from PayPal")
		return "", Error, errs
	}

	log.Info("created paypal payment", log.Data{"payment_id": created.ID, "state": created.State})

	return approvalURL, Success, errs
}

// ExecutePayment finalizes a previously created payment using the identifiers
// supplied by the returning payer's redirect. Both identifiers must be
// present or no network call is attempted.
func (pp *PayPalService) ExecutePayment(ctx context.Context, paymentID, payerID string) (*models.Payment, ResponseType, *models.ErrorList) {
	errs := models.NewErrorList()

	if paymentID == "" || payerID == "" {
		errs.AddMessage("invalid payment request")
		return nil, InvalidData, errs
	}

	conn := pp.Connection.Connect(ctx, errs)
	if errs.Has() {
		return nil, Error, errs
	}

	pending := &models.Payment{}
	if err := pp.send(ctx, conn, "GET", conn.APIBase+paymentsPath+"/"+paymentID, nil, pending); err != nil {
		addPayPalError(errs, fmt.Errorf("error getting payment: [%w]", err))
		return nil, Error, errs
	}

	executed := &models.Payment{}
	execution := &models.PaymentExecution{PayerID: payerID}
	if err := pp.send(ctx, conn, "POST", conn.APIBase+paymentsPath+"/"+pending.ID+"/execute", execution, executed); err != nil {
		addPayPalError(errs, fmt.Errorf("error executing payment: [%w]", err))
		return nil, Error, errs
	}

	log.Info("executed paypal payment", log.Data{"payment_id": executed.ID, "state": executed.State})

	return executed, Success, errs
}

func (pp *PayPalService) send(ctx context.Context, conn *PayPalConnection, method, url string, payload, v interface{}) error {
	req, err := conn.SDK.NewRequest(ctx, method, url, payload)
	if err != nil {
		return err
	}
	return conn.SDK.SendWithAuth(req, v)
}

// addPayPalError decodes a structured PayPal rejection into a readable entry
// combining its message and error code; anything else is appended as-is
func addPayPalError(errs *models.ErrorList, err error) {
	var payPalErr *paypal.ErrorResponse
	if errors.As(err, &payPalErr) && payPalErr.Name != "" {
		errs.AddWithCode(fmt.Sprintf("%s (%s)", payPalErr.Message, payPalErr.Name), payPalErr.Name, err)
		return
	}
	errs.Add(err)
}

func approvalLink(links []models.Link) string {
	for _, link := range links {
		if link.Rel == "approval_url" {
			return link.Href
		}
	}
	return ""
}
