package gamification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCashback(t *testing.T) {
	assert.Equal(t, "12.34 €", FormatCashback(12.34))
	assert.Equal(t, "0.00 €", FormatCashback(0))
	assert.Equal(t, "-5.00 €", FormatCashback(-5))
}

func TestFormatXP(t *testing.T) {
	assert.Equal(t, "50 XP", FormatXP(50))

	// Au-delà du millier, un séparateur de groupe apparaît
	formatted := FormatXP(1234)
	assert.True(t, strings.HasSuffix(formatted, " XP"))
	assert.Greater(t, len(formatted), len("1234 XP"))
}
