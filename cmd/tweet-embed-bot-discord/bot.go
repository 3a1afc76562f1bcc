package main

import (
	"log"

	"github.com/napuu/tweet-embed-bot/internal/platforms"
)

func main() {
	if err := platforms.Run("discord"); err != nil {
		log.Fatal(err)
	}
}
