package sections

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_AtFormWithOpenRange(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Senior Backend Engineer at Acme Corp 2019 - Present",
		"Built payment APIs serving millions of requests",
		"Led a team of five",
	}, "\n")

	entries := ExtractExperience(text)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Senior Backend Engineer", entry.Role)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "2019-01", entry.StartDate)
	assert.Nil(t, entry.EndDate)
	assert.True(t, entry.IsCurrent)
	assert.Equal(t, 0, entry.Order)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Contains(t, entry.Description, "Built payment APIs")
	assert.Contains(t, entry.Description, "Led a team of five")
}

func TestExtractExperience_PipeFormWithLocation(t *testing.T) {
	text := strings.Join([]string{
		"Work History",
		"Software Engineer | Globex Inc, Austin, TX | 2016 - 2019",
		"Shipped the billing platform",
	}, "\n")

	entries := ExtractExperience(text)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Software Engineer", entry.Role)
	assert.Equal(t, "Globex Inc", entry.Company)
	assert.Equal(t, "Austin, TX", entry.Location)
	assert.Equal(t, "2016-01", entry.StartDate)
	require.NotNil(t, entry.EndDate)
	assert.Equal(t, "2019-01", *entry.EndDate)
	assert.False(t, entry.IsCurrent)
}

func TestExtractExperience_PipeFormCompanyFirst(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Globex Inc | Software Engineer | 2016 - 2019",
	}, "\n")

	entries := ExtractExperience(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Software Engineer", entries[0].Role)
	assert.Equal(t, "Globex Inc", entries[0].Company)
}

func TestExtractExperience_MonthYearDates(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Data Analyst at Initech 3/2018 - 11/2020",
	}, "\n")

	entries := ExtractExperience(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "2018-03", entries[0].StartDate)
	require.NotNil(t, entries[0].EndDate)
	assert.Equal(t, "2020-11", *entries[0].EndDate)
}

func TestExtractExperience_DropsEntryWithoutCompany(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Volunteer Developer 2015 - 2016",
	}, "\n")

	assert.Empty(t, ExtractExperience(text))
}

func TestExtractExperience_CapsAtTen(t *testing.T) {
	lines := []string{"Experience"}
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("Engineer at Corp%02d 2001 - 2002", i))
	}

	entries := ExtractExperience(strings.Join(lines, "\n"))

	require.Len(t, entries, 10)
	assert.Equal(t, "Corp00", entries[0].Company)
	assert.Equal(t, "Corp09", entries[9].Company)
	assert.Equal(t, 9, entries[9].Order)
}

func TestExtractExperience_NoSection(t *testing.T) {
	text := "Jane Doe\nSenior Engineer\njane@example.com"

	assert.Empty(t, ExtractExperience(text))
}
