package main

import (
	"log"

	"github.com/brandonbloom/codenamize/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
