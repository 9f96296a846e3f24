package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// outdatedEmailProviders read as dated to recruiters.
var outdatedEmailProviders = map[string]bool{
	"aol.com":     true,
	"hotmail.com": true,
	"yahoo.com":   true,
	"msn.com":     true,
	"comcast.net": true,
}

var (
	numericUsernameRe  = regexp.MustCompile(`\d{4,}`)
	linkedinProfileRe  = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	linkedinCompanyRe  = regexp.MustCompile(`linkedin\.com/company/`)
	phoneDigitsRe      = regexp.MustCompile(`\d`)
	phoneCandidateRe   = regexp.MustCompile(`(\+?\d[\d\s().-]{8,}\d)`)
	locationHasCommaRe = regexp.MustCompile(`.+,\s*.+`)
)

// CheckProfessionalStandards audits the contact header: email quality,
// LinkedIn URL shape, phone formatting consistency, and location format.
func CheckProfessionalStandards(record *types.ResumeRecord) []types.Issue {
	var issues []types.Issue

	issues = append(issues, checkEmail(record.Contact.Email)...)
	issues = append(issues, checkLinkedIn(record.Contact.LinkedIn)...)
	issues = append(issues, checkPhoneConsistency(record)...)
	issues = append(issues, checkLocation(record.Contact.Location)...)
	return issues
}

func checkEmail(email string) []types.Issue {
	if email == "" {
		return nil
	}
	var issues []types.Issue

	parts := strings.SplitN(strings.ToLower(email), "@", 2)
	if len(parts) != 2 {
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "malformed_email",
			Message:  fmt.Sprintf("Email %q does not look like a valid address", email),
		}}
	}
	username, domain := parts[0], parts[1]

	if outdatedEmailProviders[domain] {
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "outdated_email_provider",
			Message:  fmt.Sprintf("Email provider %q reads as dated", domain),
			Fix:      "Use a modern provider or a personal domain",
		})
	}
	if numericUsernameRe.MatchString(username) || strings.Contains(username, "_") {
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "unprofessional_email",
			Message:  "Email username contains long digit runs or underscores",
			Fix:      "Prefer firstname.lastname style addresses",
		})
	}
	return issues
}

func checkLinkedIn(url string) []types.Issue {
	if url == "" {
		return nil
	}
	lower := strings.ToLower(url)

	if linkedinCompanyRe.MatchString(lower) {
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "linkedin_company_url",
			Message:  "LinkedIn URL points at a company page, not a profile",
			Fix:      "Link the personal profile (linkedin.com/in/...)",
		}}
	}
	if !linkedinProfileRe.MatchString(lower) {
		return []types.Issue{{
			Severity: types.SeverityWarning,
			Category: "malformed_linkedin_url",
			Message:  fmt.Sprintf("LinkedIn URL %q does not match the linkedin.com/in/<id> shape", url),
		}}
	}
	return nil
}

// checkPhoneConsistency compares the contact phone with any phone-shaped
// strings elsewhere in the document.
func checkPhoneConsistency(record *types.ResumeRecord) []types.Issue {
	primary := record.Contact.Phone
	if primary == "" {
		return nil
	}
	primaryDigits := digitsOnly(primary)

	// Candidates never include a leading "(", so containment rather than
	// equality decides whether the formatting matches.
	for _, candidate := range phoneCandidateRe.FindAllString(record.RawText, -1) {
		digits := digitsOnly(candidate)
		if digits == primaryDigits && !strings.Contains(strings.TrimSpace(primary), strings.TrimSpace(candidate)) {
			return []types.Issue{{
				Severity: types.SeverityWarning,
				Category: "inconsistent_phone_format",
				Message:  "Phone number is formatted differently in different places",
				Fix:      "Pick one format, e.g. (555) 123-4567, and use it everywhere",
			}}
		}
	}
	return nil
}

func checkLocation(location string) []types.Issue {
	if location == "" {
		return nil
	}
	if locationHasCommaRe.MatchString(location) {
		return nil
	}
	return []types.Issue{{
		Severity: types.SeverityWarning,
		Category: "incomplete_location",
		Message:  fmt.Sprintf("Location %q is missing a city/region pair", location),
		Fix:      "Use \"City, Region\" format",
	}}
}

func digitsOnly(s string) string {
	return strings.Join(phoneDigitsRe.FindAllString(s, -1), "")
}
