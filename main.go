package main

import (
	"log"
	"os"

	"github.com/TFMV/treelist/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
