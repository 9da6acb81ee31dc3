package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dicepass/dicepass/internal/models"
)

const entropyFAQ = "https://theworld.com/~reinhold/dicewarefaq.html#entropy"

// renderPassphrase prints the formatted passphrase in bold green
func (h *Handler) renderPassphrase(phrase *models.Passphrase) {
	green := color.New(color.FgGreen, color.Bold)

	fmt.Fprintln(h.out, green.Sprint(phrase.Format()))
}

// renderEntropy prints the possibilities and entropy block below the
// passphrase, values in blue
func (h *Handler) renderEntropy(entropy models.Entropy) {
	blue := color.New(color.FgBlue)

	fmt.Fprintf(h.out, "\nPossibilities: %s\n", blue.Sprintf("%d", entropy.Possibilities))
	fmt.Fprintf(h.out, "Entropy: %s\n", blue.Sprintf("%.2f bits", entropy.Bits))
	fmt.Fprintf(h.out, "\nMore about entropy at %s\n", entropyFAQ)
}
