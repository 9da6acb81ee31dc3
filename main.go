package main

import (
	"github.com/joho/godotenv"

	"github.com/dicepass/dicepass/cmd"
)

func main() {
	// A .env file is optional, variables it holds reach viper through
	// the process environment
	_ = godotenv.Load()

	cmd.Execute()
}
