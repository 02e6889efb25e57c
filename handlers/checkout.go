package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/xanweb/paypal-checkout-api/models"
	"github.com/xanweb/paypal-checkout-api/service"
	"github.com/xanweb/paypal-checkout-api/utils"
)

// HandleCreateCheckout creates a pending PayPal payment and returns the
// approval URL for the calling app to redirect the payer to
func HandleCreateCheckout(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingCheckoutRequest models.IncomingCheckoutRequest
	err := requestDecoder.Decode(&incomingCheckoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validateCheckoutCreate(incomingCheckoutRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create checkout: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// currency has to be set before the items so each one is stamped with it
	builder := service.NewCheckoutBuilder().
		SetPaymentDescription(incomingCheckoutRequest.Description).
		SetSubtotal(incomingCheckoutRequest.Subtotal).
		SetTax(incomingCheckoutRequest.Tax).
		SetShipping(incomingCheckoutRequest.Shipping).
		SetTotal(incomingCheckoutRequest.Total).
		SetSuccessURL(incomingCheckoutRequest.SuccessURL).
		SetFailURL(incomingCheckoutRequest.FailURL)

	if incomingCheckoutRequest.Currency != "" {
		builder.SetCurrency(incomingCheckoutRequest.Currency)
	}
	if incomingCheckoutRequest.PaymentMethod != "" {
		builder.SetPaymentMethod(incomingCheckoutRequest.PaymentMethod)
	}
	if incomingCheckoutRequest.InvoiceNumber != "" {
		builder.SetInvoiceNumber(incomingCheckoutRequest.InvoiceNumber)
	}

	for _, item := range incomingCheckoutRequest.Items {
		builder.AddItem(service.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	approvalURL, responseType, errs := payPalService.CreatePayment(req.Context(), builder)
	if errs.Has() {
		log.ErrorR(req, fmt.Errorf("error creating checkout: %v", errs.Errors()))
		switch responseType {
		case service.InvalidData:
			utils.WriteErrorsWithStatus(w, req, errs, http.StatusBadRequest)
		default:
			utils.WriteErrorsWithStatus(w, req, errs, http.StatusInternalServerError)
		}
		return
	}

	checkoutResource := models.CheckoutResourceRest{
		ApprovalURL: approvalURL,
	}

	w.Header().Set("Location", approvalURL)
	utils.WriteJSONWithStatus(w, req, checkoutResource, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new checkout", log.Data{"status": http.StatusCreated})
}

// HandleExecutePayment finalizes a payment once the payer has returned from
// the approval redirect. The correlation identifiers are extracted from the
// query string here and passed explicitly to the service.
func HandleExecutePayment(w http.ResponseWriter, req *http.Request) {
	paymentID := req.URL.Query().Get("paymentId")
	payerID := req.URL.Query().Get("PayerID")

	payment, responseType, errs := payPalService.ExecutePayment(req.Context(), paymentID, payerID)
	if errs.Has() {
		log.ErrorR(req, fmt.Errorf("error executing payment: %v", errs.Errors()))
		switch responseType {
		case service.InvalidData:
			utils.WriteErrorsWithStatus(w, req, errs, http.StatusBadRequest)
		default:
			utils.WriteErrorsWithStatus(w, req, errs, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)

	log.InfoR(req, "Successful GET request to execute payment", log.Data{"payment_id": payment.ID, "state": payment.State})
}

func validateCheckoutCreate(incomingCheckoutRequest models.IncomingCheckoutRequest) error {
	validate := validator.New()
	return validate.Struct(incomingCheckoutRequest)
}
