package extraction

import (
	"github.com/jonathan/resume-parser/internal/fields"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
	"golang.org/x/sync/errgroup"
)

// MinTextLength is the readability threshold: normalized text shorter than
// this is treated as an empty or corrupt document.
const MinTextLength = 100

// Parse decodes the PDF in buf, normalizes its text and runs the full
// extraction pipeline. The only error it returns is
// *UnreadableDocumentError; every per-field miss degrades to an absent value
// in the result.
func Parse(buf []byte) (*types.ExtractionResult, error) {
	raw, err := ingestion.ExtractText(buf)
	if err != nil {
		return nil, &UnreadableDocumentError{Cause: err}
	}
	return ParseText(raw)
}

// ParseText runs the pipeline over already-extracted page text. It is the
// entry point used when the document bytes have been decoded elsewhere.
func ParseText(raw string) (*types.ExtractionResult, error) {
	text := ingestion.Normalize(raw)
	if len(text) < MinTextLength {
		return nil, &UnreadableDocumentError{Length: len(text)}
	}

	result := &types.ExtractionResult{}

	// The extractors share nothing but the read-only text, so they can run
	// concurrently; ordering does not affect the result.
	var (
		personal   types.PersonalInfo
		summary    *types.Summary
		experience []types.ExperienceEntry
		education  []types.EducationEntry
		skills     []types.SkillEntry
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		personal = extractPersonalInfo(text)
		return nil
	})
	g.Go(func() error {
		summary = sections.ExtractSummary(text)
		return nil
	})
	g.Go(func() error {
		experience = sections.ExtractExperience(text)
		return nil
	})
	g.Go(func() error {
		education = sections.ExtractEducation(text)
		return nil
	})
	g.Go(func() error {
		skills = sections.ExtractSkills(text)
		return nil
	})
	_ = g.Wait()

	// Groups with no recovered signal stay nil so their absence is visible
	// in the serialized result.
	if !personal.IsEmpty() {
		result.PersonalInfo = &personal
	}
	result.Summary = summary
	result.Experience = experience
	result.Education = education
	result.Skills = skills
	result.Confidence = Confidence(result)

	return result, nil
}

// extractPersonalInfo runs every field extractor over the normalized text.
// Each field is independent: one extractor missing never affects another.
func extractPersonalInfo(text string) types.PersonalInfo {
	return types.PersonalInfo{
		Name:         fields.Name(text),
		Role:         fields.Role(text),
		Email:        fields.Email(text),
		Phone:        fields.Phone(text),
		Location:     fields.Location(text),
		LinkedInURL:  fields.LinkedInURL(text),
		PortfolioURL: fields.PortfolioURL(text),
	}
}
