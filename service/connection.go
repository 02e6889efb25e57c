package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plutov/paypal/v4"
	"github.com/xanweb/paypal-checkout-api/models"
)

// Credentials holds the merchant's PayPal API credentials. Any Env other
// than "live" resolves to the sandbox environment.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Env          string
}

// PayPalSDK is an interface for the PayPal client methods used by this
// service. It is the only surface the orchestration core depends on;
// *paypal.Client satisfies it.
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	NewRequest(ctx context.Context, method, url string, payload interface{}) (*http.Request, error)
	SendWithAuth(req *http.Request, v interface{}) error
}

// PayPalConnection is an authenticated session handle against one PayPal
// environment, valid for a single create or execute call
type PayPalConnection struct {
	SDK     PayPalSDK
	APIBase string
}

// Connector exchanges credentials for an authenticated connection
type Connector interface {
	Connect(ctx context.Context, errs *models.ErrorList) *PayPalConnection
}

// PayPalConnector obtains bearer sessions from PayPal's OAuth endpoint
type PayPalConnector struct {
	Credentials Credentials
}

// Connect authenticates against PayPal. On failure the error is appended to
// errs and nil is returned; callers must check errs before using the
// connection. Sessions are never cached across calls.
func (c *PayPalConnector) Connect(ctx context.Context, errs *models.ErrorList) *PayPalConnection {
	apiBase := getPayPalAPIBase(c.Credentials.Env)

	client, err := paypal.NewClient(c.Credentials.ClientID, c.Credentials.ClientSecret, apiBase)
	if err != nil {
		errs.Add(fmt.Errorf("error creating paypal client: [%v]", err))
		return nil
	}

	_, err = client.GetAccessToken(ctx)
	if err != nil {
		errs.Add(fmt.Errorf("error getting access token: [%v]", err))
		return nil
	}

	return &PayPalConnection{
		SDK:     client,
		APIBase: apiBase,
	}
}

func getPayPalAPIBase(env string) string {
	if env == "live" {
		return paypal.APIBaseLive
	}
	return paypal.APIBaseSandBox
}
