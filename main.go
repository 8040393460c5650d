package main

import (
	"github.com/joho/godotenv"

	"github.com/menulens/menulens-cli/cmd"
)

func main() {
	// .env is optional; GROQ_API_KEY may come from the real environment.
	_ = godotenv.Load()
	cmd.Execute()
}
