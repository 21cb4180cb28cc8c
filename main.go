package main

import (
	"github.com/joho/godotenv"

	"github.com/timvw/red-letter/cmd"
)

func main() {
	// Load .env if present; real environment variables still win.
	_ = godotenv.Load()

	cmd.Execute()
}
