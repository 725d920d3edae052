package gamification

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frenchPrinter = message.NewPrinter(language.French)

// FormatCashback formate un montant de cashback en euros
func FormatCashback(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// FormatXP formate un total d'XP avec séparateur de milliers à la française
func FormatXP(xp int) string {
	return frenchPrinter.Sprintf("%d XP", xp)
}
