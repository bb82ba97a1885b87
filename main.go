package main

import (
	"log"
	"os"

	"github.com/TFMV/sift/cmd"
)

func main() {
	log.SetFlags(0)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v", r)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
