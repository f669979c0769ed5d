package main

import (
	"log"

	"github.com/fatih/color"

	"github.com/adgsenpai/static-web-unikernel/server"
)

// The endpoint is a build-time constant: the VM runtime forwards host port
// 8080 into the guest, so there is nothing to configure at runtime.
const listenAddr = "0.0.0.0:8080"

func main() {
	color.Cyan("Welcome to the Unikernel World!")
	log.Printf("Listening for connections on %s", listenAddr)

	srv := server.New()
	if err := srv.ListenAndServe(listenAddr); err != nil {
		log.Fatalf("unable to bind %s: %v", listenAddr, err)
	}
}
