package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Contact sub-budgets: email 4, phone 3, linkedin 2, location 1.
const (
	emailPoints    = 4.0
	phonePoints    = 3.0
	linkedinPoints = 2.0
	locationPoints = 1.0
)

var (
	emailShapeRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneDigitRe    = regexp.MustCompile(`\d`)
	linkedinShapeRe = regexp.MustCompile(`linkedin\.com/in/`)
)

// scoreContact awards points for each reachable, well-formed contact field.
func scoreContact(record *types.ResumeRecord) types.ComponentScore {
	c := types.ComponentScore{Name: "contact_info", MaxScore: contactBudget}
	contact := record.Contact

	switch {
	case contact.Email == "":
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityCritical,
			Category: "missing_email",
			Message:  "No email address found",
			Fix:      "Add an email address to the contact header",
		})
	case emailShapeRe.MatchString(contact.Email):
		c.Score += emailPoints
	default:
		c.Score += 1
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "malformed_email",
			Message:  "Email address does not look valid",
		})
	}

	switch digits := len(phoneDigitRe.FindAllString(contact.Phone, -1)); {
	case contact.Phone == "":
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "missing_phone",
			Message:  "No phone number found",
		})
	case digits >= 10:
		c.Score += phonePoints
	default:
		c.Score += 1
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Category: "short_phone_number",
			Message:  "Phone number has fewer than 10 digits",
		})
	}

	switch {
	case contact.LinkedIn == "":
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "missing_linkedin",
			Message:  "No LinkedIn profile linked",
			Fix:      "Add a linkedin.com/in/<id> URL",
		})
	case linkedinShapeRe.MatchString(strings.ToLower(contact.LinkedIn)):
		c.Score += linkedinPoints
	default:
		c.Score += 1
	}

	if contact.Location != "" {
		c.Score += locationPoints
	} else {
		c.Issues = append(c.Issues, types.Issue{
			Severity: types.SeveritySuggestion,
			Category: "missing_location",
			Message:  "No location found; many ATS filters screen by region",
		})
	}

	return clampComponent(c)
}
