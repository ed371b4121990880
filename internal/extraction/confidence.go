package extraction

import (
	"github.com/jonathan/resume-parser/internal/types"
)

// Bucket weights sum to 100. Personal info and experience dominate because
// they are what downstream consumers need most; the remainder rewards a
// filled-out document.
const (
	nameWeight     = 10.0
	emailWeight    = 10.0
	phoneWeight    = 4.0
	roleWeight     = 4.0
	locationWeight = 1.0
	linkedinWeight = 1.0

	summaryWeight = 10.0

	experiencePerEntry = 10.0
	experienceCap      = 30.0

	educationPerEntry = 7.5
	educationCap      = 15.0

	skillPerEntry = 1.5
	skillCap      = 15.0
)

// Confidence maps an extraction result to a deterministic [0,1] completeness
// score: achieved weight over the total of 100. It measures how much
// structure was recovered, not how accurate it is.
func Confidence(result *types.ExtractionResult) float64 {
	var achieved float64

	if p := result.PersonalInfo; p != nil {
		if p.Name != "" {
			achieved += nameWeight
		}
		if p.Email != "" {
			achieved += emailWeight
		}
		if p.Phone != "" {
			achieved += phoneWeight
		}
		if p.Role != "" {
			achieved += roleWeight
		}
		if p.Location != "" {
			achieved += locationWeight
		}
		if p.LinkedInURL != "" {
			achieved += linkedinWeight
		}
	}

	if result.Summary != nil && result.Summary.Content != "" {
		achieved += summaryWeight
	}

	achieved += capped(float64(len(result.Experience))*experiencePerEntry, experienceCap)
	achieved += capped(float64(len(result.Education))*educationPerEntry, educationCap)
	achieved += capped(float64(len(result.Skills))*skillPerEntry, skillCap)

	score := achieved / 100.0
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func capped(value, cap float64) float64 {
	if value > cap {
		return cap
	}
	return value
}
