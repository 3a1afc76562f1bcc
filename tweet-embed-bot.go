package main

import (
	"log"
	"os"

	"github.com/napuu/tweet-embed-bot/internal/platforms"
)

func main() {
	if len(os.Args) == 1 {
		log.Fatalf("Usage: tweet-embed-bot <telegram/discord/all>")
	}
	services, err := platforms.ServicesFromArg(os.Args[1])
	if err != nil {
		log.Fatalf("Usage: tweet-embed-bot <telegram/discord/all>: %v", err)
	}
	if err := platforms.Run(services...); err != nil {
		log.Fatal(err)
	}
}
