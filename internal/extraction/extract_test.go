package extraction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullResume = strings.Join([]string{
	"JOHN SMITH",
	"Senior Software Engineer",
	"Austin, TX",
	"john.smith@example.com",
	"555-123-4567",
	"linkedin.com/in/johnsmith",
	"",
	"Summary",
	"Backend engineer focused on designing and operating large-scale distributed systems for a decade.",
	"Known for pragmatic delivery, mentoring and a strong reliability culture across product teams.",
	"Deep interest in developer platforms that keep shipping fast and safe for everyone involved.",
	"",
	"Experience",
	"Senior Backend Engineer at Acme Corp 2019 - Present",
	"Built payment APIs serving millions of requests",
	"Staff Engineer | Globex Inc | 2016 - 2019",
	"Scaled the billing platform",
	"",
	"Education",
	"Bachelor of Science in Computer Science",
	"Stanford University, 2018",
	"",
	"Skills",
	"Languages: Go, Python",
	"Infrastructure: Docker, Kubernetes",
}, "\n")

func TestParseText_FullResume(t *testing.T) {
	result, err := ParseText(fullResume)

	require.NoError(t, err)
	require.NotNil(t, result)

	require.NotNil(t, result.PersonalInfo)
	assert.Equal(t, "John Smith", result.PersonalInfo.Name)
	assert.Equal(t, "Senior Software Engineer", result.PersonalInfo.Role)
	assert.Equal(t, "john.smith@example.com", result.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", result.PersonalInfo.Phone)
	assert.Equal(t, "Austin, TX", result.PersonalInfo.Location)
	assert.Equal(t, "https://www.linkedin.com/in/johnsmith", result.PersonalInfo.LinkedInURL)
	assert.Equal(t, "", result.PersonalInfo.PortfolioURL)

	require.NotNil(t, result.Summary)
	assert.Contains(t, result.Summary.Content, "Backend engineer focused")

	require.Len(t, result.Experience, 2)
	assert.Equal(t, "Senior Backend Engineer", result.Experience[0].Role)
	assert.Equal(t, "Acme Corp", result.Experience[0].Company)
	assert.True(t, result.Experience[0].IsCurrent)
	assert.Equal(t, "Staff Engineer", result.Experience[1].Role)
	assert.Equal(t, "Globex Inc", result.Experience[1].Company)

	require.Len(t, result.Education, 1)
	assert.Equal(t, "Stanford University", result.Education[0].Institution)

	require.Len(t, result.Skills, 4)
	assert.Equal(t, "Go", result.Skills[0].Name)
	assert.Equal(t, "Languages", result.Skills[0].Category)

	assert.Greater(t, result.Confidence, 0.5)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestParseText_TooShort(t *testing.T) {
	result, err := ParseText("too short to be a resume")

	require.Error(t, err)
	assert.Nil(t, result)

	var unreadable *UnreadableDocumentError
	require.True(t, errors.As(err, &unreadable))
	assert.Less(t, unreadable.Length, MinTextLength)
}

func TestParseText_MinimalResume(t *testing.T) {
	text := strings.Join([]string{
		"JANE DOE",
		"jane@example.com",
		"Available for contract engagements starting next quarter anywhere in the continental United States.",
	}, "\n")

	result, err := ParseText(text)

	require.NoError(t, err)
	require.NotNil(t, result.PersonalInfo)
	assert.Equal(t, "Jane Doe", result.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", result.PersonalInfo.Email)
	assert.Nil(t, result.Summary)
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Skills)
	assert.InDelta(t, 0.20, result.Confidence, 1e-9)
}

func TestParseText_Deterministic(t *testing.T) {
	first, err := ParseText(fullResume)
	require.NoError(t, err)
	second, err := ParseText(fullResume)
	require.NoError(t, err)

	assert.Equal(t, first.PersonalInfo, second.PersonalInfo)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, len(first.Experience), len(second.Experience))
	assert.Equal(t, len(first.Skills), len(second.Skills))
}

func TestParse_InvalidPDFBytes(t *testing.T) {
	result, err := Parse([]byte("not a pdf document"))

	require.Error(t, err)
	assert.Nil(t, result)

	var unreadable *UnreadableDocumentError
	require.True(t, errors.As(err, &unreadable))
	assert.NotNil(t, unreadable.Cause)
}
