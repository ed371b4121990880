package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePersonalInfoRequest_ValidatesEmail(t *testing.T) {
	req := &UpdatePersonalInfoRequest{Email: "not-an-email"}

	assert.Error(t, req.Validate())
}

func TestUpdatePersonalInfoRequest_ValidatesURL(t *testing.T) {
	req := &UpdatePersonalInfoRequest{LinkedInURL: "not a url"}

	assert.Error(t, req.Validate())
}

func TestUpdatePersonalInfoRequest_EmptyIsValid(t *testing.T) {
	req := &UpdatePersonalInfoRequest{}

	require.NoError(t, req.Validate())
}

func TestUpdatePersonalInfoRequest_Apply(t *testing.T) {
	info := &PersonalInfo{
		Name:  "Jane Doe",
		Email: "old@example.com",
		Phone: "555-123-4567",
	}
	req := &UpdatePersonalInfoRequest{
		Email: "new@example.com",
		Role:  "Staff Engineer",
	}

	req.Apply(info)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "new@example.com", info.Email)
	assert.Equal(t, "Staff Engineer", info.Role)
	assert.Equal(t, "555-123-4567", info.Phone)
}

func TestPersonalInfo_IsEmpty(t *testing.T) {
	assert.True(t, (&PersonalInfo{}).IsEmpty())
	assert.False(t, (&PersonalInfo{Email: "jane@example.com"}).IsEmpty())
}
