package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_HeaderLine(t *testing.T) {
	text := "Jane Q. Public\nSenior Developer\nAustin, TX"

	assert.Equal(t, "Jane Q. Public", Name(text))
}

func TestName_RecasesAllCaps(t *testing.T) {
	text := "JANE DOE\nSenior Developer"

	assert.Equal(t, "Jane Doe", Name(text))
}

func TestName_SkipsContactLines(t *testing.T) {
	text := "jane@example.com\nhttps://janedoe.dev\n555-123-4567\nJane Doe"

	assert.Equal(t, "Jane Doe", Name(text))
}

func TestName_SkipsTitleLines(t *testing.T) {
	text := "Senior Software Engineer\nJane Doe"

	assert.Equal(t, "Jane Doe", Name(text))
}

func TestName_NotFound(t *testing.T) {
	text := "Summary\nBuilt many systems over 10 years at various companies across 3 continents"

	assert.Equal(t, "", Name(text))
}

func TestRole_HeaderLine(t *testing.T) {
	text := "Jane Doe\nSenior Software Engineer\nAustin, TX"

	assert.Equal(t, "Senior Software Engineer", Role(text))
}

func TestRole_SkipsDatedLines(t *testing.T) {
	text := "Jane Doe\nSoftware Engineer 2019 - 2021"

	assert.Equal(t, "", Role(text))
}

func TestRole_NotFound(t *testing.T) {
	assert.Equal(t, "", Role("Jane Doe\nAustin, TX"))
}

func TestLocation_CityState(t *testing.T) {
	text := "Jane Doe\nSenior Engineer\nAustin, TX"

	assert.Equal(t, "Austin, TX", Location(text))
}

func TestLocation_CityCountry(t *testing.T) {
	text := "Based in Toronto, Canada since 2019"

	assert.Equal(t, "Toronto, Canada", Location(text))
}

func TestLocation_FiltersTechnologyNames(t *testing.T) {
	text := "Skills: React, Redis"

	assert.Equal(t, "", Location(text))
}

func TestLocation_NotFound(t *testing.T) {
	assert.Equal(t, "", Location("Jane Doe\nSenior Engineer"))
}
