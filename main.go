package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/xanweb/paypal-checkout-api/config"
	"github.com/xanweb/paypal-checkout-api/handlers"
)

func main() {
	log.Namespace = "paypal-checkout-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	mainRouter := mux.NewRouter()

	handlers.Register(mainRouter, *cfg)

	log.Info("Starting paypal-checkout-api service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal-checkout-api service")
}
