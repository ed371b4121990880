package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_RemovesControlCharacters(t *testing.T) {
	input := "John\x00Smith\x01\x02 Engineer\x7f"

	result := Normalize(input)

	assert.Equal(t, "JohnSmith Engineer", result)
}

func TestNormalize_PreservesNewlines(t *testing.T) {
	input := "John Smith\nSenior Engineer\nAustin, TX"

	result := Normalize(input)

	assert.Equal(t, 3, len(strings.Split(result, "\n")))
}

func TestNormalize_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"

	result := Normalize(input)

	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	input := "John    Smith\t\tEngineer"

	result := Normalize(input)

	assert.Equal(t, "John Smith Engineer", result)
}

func TestNormalize_ReplacesBulletGlyphs(t *testing.T) {
	input := "•Built APIs\n●Led team"

	result := Normalize(input)

	assert.Equal(t, "Built APIs\nLed team", result)
}

func TestNormalize_RemovesZeroWidthCharacters(t *testing.T) {
	input := "John​Smith‍\uFEFF"

	result := Normalize(input)

	assert.Equal(t, "JohnSmith", result)
}

func TestNormalize_RemovesEmojiAndSymbols(t *testing.T) {
	input := "📧 john@example.com ☎ 555-1234 → contact"

	result := Normalize(input)

	assert.Equal(t, "john@example.com 555-1234 contact", result)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "John • Smith\t\tEngineer\n\nAustin,  TX 📍"

	once := Normalize(input)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}
