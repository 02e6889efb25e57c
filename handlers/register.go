package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/xanweb/paypal-checkout-api/config"
	"github.com/xanweb/paypal-checkout-api/service"
)

var payPalService *service.PayPalService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {

	payPalService = &service.PayPalService{
		Connection: &service.PayPalConnector{
			Credentials: service.Credentials{
				ClientID:     cfg.PaypalClientID,
				ClientSecret: cfg.PaypalSecret,
				Env:          cfg.PaypalEnv,
			},
		},
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	checkoutRouter := mainRouter.PathPrefix("/checkouts").Subrouter()
	checkoutRouter.HandleFunc("", HandleCreateCheckout).Methods("POST").Name("create-checkout")

	// The payer returns here from the approval redirect, so this subrouter
	// must stay free of any authentication middleware.
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/payments/paypal", HandleExecutePayment).Methods("GET").Name("handle-paypal-return")

	checkoutRouter.Use(log.Handler)
	callbackRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
