package main

import (
	"fmt"
	"os"

	"github.com/Salmoneer/editor/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}
}
