package main

import (
	"os"

	"github.com/maheshsawant8949-bot/Remotion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
