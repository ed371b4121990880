package types

import (
	"github.com/go-playground/validator/v10"
)

// UpdatePersonalInfoRequest represents a manual correction to the personal
// info of a stored extraction. Fields left empty are not changed.
type UpdatePersonalInfoRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Role         string `json:"role,omitempty" validate:"omitempty,min=1,max=120"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,min=7,max=30"`
	Location     string `json:"location,omitempty" validate:"omitempty,max=120"`
	LinkedInURL  string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	PortfolioURL string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the UpdatePersonalInfoRequest using the validator.
func (r *UpdatePersonalInfoRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Apply overlays the non-empty request fields onto the given PersonalInfo.
func (r *UpdatePersonalInfoRequest) Apply(info *PersonalInfo) {
	if r.Name != "" {
		info.Name = r.Name
	}
	if r.Role != "" {
		info.Role = r.Role
	}
	if r.Email != "" {
		info.Email = r.Email
	}
	if r.Phone != "" {
		info.Phone = r.Phone
	}
	if r.Location != "" {
		info.Location = r.Location
	}
	if r.LinkedInURL != "" {
		info.LinkedInURL = r.LinkedInURL
	}
	if r.PortfolioURL != "" {
		info.PortfolioURL = r.PortfolioURL
	}
}
