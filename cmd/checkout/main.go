package main

import (
	"log"
	"net/http"

	"github.com/hadiniaraki/checkout-form/internal/config"
	"github.com/hadiniaraki/checkout-form/internal/http-server/server"
)

func main() {
	r, err := server.Start()
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(http.ListenAndServe(config.RunAddr, r))
}
