package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/plutov/paypal/v4"
	"github.com/xanweb/paypal-checkout-api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitConnect(t *testing.T) {

	Convey("Error creating paypal client with malformed credentials", t, func() {
		connector := PayPalConnector{Credentials: Credentials{}}
		errs := models.NewErrorList()

		conn := connector.Connect(context.Background(), errs)

		So(conn, ShouldBeNil)
		So(errs.Has(), ShouldBeTrue)
		So(errs.Errors()[0].Message, ShouldContainSubstring, "error creating paypal client")
	})

	Convey("Error getting access token", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", paypal.APIBaseSandBox+"/v1/oauth2/token",
			httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":"invalid_client"}`))

		connector := PayPalConnector{Credentials: Credentials{ClientID: "id", ClientSecret: "secret"}}
		errs := models.NewErrorList()

		conn := connector.Connect(context.Background(), errs)

		So(conn, ShouldBeNil)
		So(errs.Has(), ShouldBeTrue)
		So(errs.Errors()[0].Message, ShouldContainSubstring, "error getting access token")
	})

	Convey("Successful connection against sandbox", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", paypal.APIBaseSandBox+"/v1/oauth2/token",
			httpmock.NewStringResponder(http.StatusOK, `{"access_token":"token","token_type":"Bearer","expires_in":32400}`))

		connector := PayPalConnector{Credentials: Credentials{ClientID: "id", ClientSecret: "secret"}}
		errs := models.NewErrorList()

		conn := connector.Connect(context.Background(), errs)

		So(errs.Has(), ShouldBeFalse)
		So(conn, ShouldNotBeNil)
		So(conn.APIBase, ShouldEqual, paypal.APIBaseSandBox)
		So(conn.SDK, ShouldNotBeNil)
	})

}

func TestUnitGetPayPalAPIBase(t *testing.T) {

	Convey("Live env resolves the live API base", t, func() {
		So(getPayPalAPIBase("live"), ShouldEqual, paypal.APIBaseLive)
	})

	Convey("Anything else resolves the sandbox API base", t, func() {
		So(getPayPalAPIBase("sandbox"), ShouldEqual, paypal.APIBaseSandBox)
		So(getPayPalAPIBase(""), ShouldEqual, paypal.APIBaseSandBox)
		So(getPayPalAPIBase("test"), ShouldEqual, paypal.APIBaseSandBox)
	})

}
