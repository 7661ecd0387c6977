// Package docgen produces mock resume and cover letter text by plain
// string interpolation over profile and job fields. It is the seam where
// a real generation service would be substituted later; callers depend
// only on the field-substitution mapping and the defaults.
package docgen

import (
	"fmt"
	"strings"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
)

// Resume renders a mock resume from a seeker profile. Deterministic for
// identical inputs.
func Resume(profile *model.User) string {
	return fmt.Sprintf(`
%s
Email: %s | Phone: %s

PROFESSIONAL SUMMARY
Experienced professional with strong background in %s.
%s

EDUCATION
%s

TECHNICAL SKILLS
%s

EXPERIENCE
%s
`,
		profile.FullName,
		profile.Email,
		valueOr(profile.Phone, "Not provided"),
		skillsOr(profile.Skills, "various technologies"),
		valueOr(profile.Experience, "Seeking new opportunities to contribute and grow."),
		valueOr(profile.Education, "Educational background as provided in profile"),
		skillsOr(profile.Skills, "Problem solving, Communication, Team collaboration"),
		valueOr(profile.Experience, "Professional experience as outlined in profile"),
	)
}

// CoverLetter renders a mock cover letter from a seeker profile and the
// job being applied to. Only the first three skills are highlighted.
func CoverLetter(profile *model.User, job *model.Job) string {
	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s.

With my background in %s, I am confident I would be a valuable addition to your team. My experience includes %s.

What particularly excites me about this role is the opportunity to work on %s at %s. Based on the job requirements, I believe my skills in %s align well with what you're looking for.

I am eager to bring my expertise to %s and contribute to your continued success. Thank you for considering my application.

Sincerely,
%s`,
		job.Title,
		job.Company,
		skillsOr(profile.Skills, "relevant technologies"),
		valueOr(profile.Experience, "various professional experiences"),
		job.Title,
		job.Company,
		skillsOr(firstN(profile.Skills, 3), "key areas"),
		job.Company,
		profile.FullName,
	)
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func skillsOr(skills []string, fallback string) string {
	if len(skills) == 0 {
		return fallback
	}
	return strings.Join(skills, ", ")
}

func firstN(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}
