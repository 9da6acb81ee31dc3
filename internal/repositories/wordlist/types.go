package wordlist

import "github.com/dicepass/dicepass/internal/models"

type GetWordInput struct {
	Index int
}

type GetWordOutput struct {
	Entry *models.WordEntry
}

type CountEntriesInput struct {
}

type CountEntriesOutput struct {
	Count int
}
