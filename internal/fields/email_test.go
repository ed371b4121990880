package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail_CleanAddress(t *testing.T) {
	text := "Jane Q. Public\njane.public@example.com\nAustin, TX"

	assert.Equal(t, "jane.public@example.com", Email(text))
}

func TestEmail_InlineAfterName(t *testing.T) {
	text := "Jane Q. Public jane.public@example.com"

	assert.Equal(t, "jane.public@example.com", Email(text))
}

func TestEmail_StripsGluedPhoneNumber(t *testing.T) {
	// PDF extraction glues the phone onto the address and misreads the TLD
	// dot as a comma.
	text := "Contact: 555-123-4567timaz.dev@gmail,com for details"

	assert.Equal(t, "timaz.dev@gmail.com", Email(text))
}

func TestEmail_RepairsLineReflow(t *testing.T) {
	text := "Email: jane.doe@ example .com"

	assert.Equal(t, "jane.doe@example.com", Email(text))
}

func TestEmail_RepairsCommaBeforeTLD(t *testing.T) {
	text := "reach me at jane@ exa mple ,com today"

	assert.Equal(t, "jane@example.com", Email(text))
}

func TestEmail_NoAddress(t *testing.T) {
	assert.Equal(t, "", Email("Jane Doe\nSenior Engineer\nAustin, TX"))
}

func TestEmail_UnrepairableCandidate(t *testing.T) {
	// A bare @ with no TLD anywhere cannot be repaired into a valid address.
	assert.Equal(t, "", Email("reach me at jdoe@corp"))
}

func TestEmail_StableOnOwnOutput(t *testing.T) {
	first := Email("Contact: 555-123-4567timaz.dev@gmail,com for details")
	second := Email(first)

	assert.Equal(t, first, second)
}

func TestSanitizeEmail_RejectsMultipleAtSigns(t *testing.T) {
	assert.Equal(t, "", sanitizeEmail("a@b@example.com"))
}

func TestSanitizeEmail_CutsLeadingDigitRun(t *testing.T) {
	assert.Equal(t, "jane@example.com", sanitizeEmail("4567jane@example.com"))
}

func TestSanitizeEmail_KeepsShortDigitPrefix(t *testing.T) {
	// Short digit runs are legitimate local parts, not phone leakage.
	assert.Equal(t, "42jane@example.com", sanitizeEmail("42jane@example.com"))
}
