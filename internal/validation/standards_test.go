package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		categories []string
	}{
		{name: "clean address", email: "jane.doe@gmail.com"},
		{name: "empty is skipped", email: ""},
		{name: "missing at sign", email: "jane.doe.gmail.com", categories: []string{"malformed_email"}},
		{name: "outdated provider", email: "jane@aol.com", categories: []string{"outdated_email_provider"}},
		{name: "long digit run", email: "jane19881234@gmail.com", categories: []string{"unprofessional_email"}},
		{name: "underscore username", email: "jane_doe@gmail.com", categories: []string{"unprofessional_email"}},
		{
			name:       "dated and unprofessional",
			email:      "xx_jane_xx@hotmail.com",
			categories: []string{"outdated_email_provider", "unprofessional_email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkEmail(tt.email)
			require.Len(t, issues, len(tt.categories))
			for i, category := range tt.categories {
				assert.Equal(t, category, issues[i].Category)
			}
		})
	}
}

func TestCheckLinkedIn(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		category string
	}{
		{name: "profile url", url: "https://linkedin.com/in/jane-doe"},
		{name: "profile url with www", url: "https://www.linkedin.com/in/jane-doe"},
		{name: "empty is skipped", url: ""},
		{name: "company page", url: "https://linkedin.com/company/acme", category: "linkedin_company_url"},
		{name: "bare domain", url: "https://linkedin.com", category: "malformed_linkedin_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkLinkedIn(tt.url)
			if tt.category == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, tt.category, issues[0].Category)
		})
	}
}

func TestCheckPhoneConsistency(t *testing.T) {
	record := &types.ResumeRecord{
		Contact: types.Contact{Phone: "(555) 123-4567"},
		RawText: "Contact me at 555.123.4567 for references.",
	}

	issues := checkPhoneConsistency(record)
	require.Len(t, issues, 1)
	assert.Equal(t, "inconsistent_phone_format", issues[0].Category)
}

func TestCheckPhoneConsistencySameFormat(t *testing.T) {
	record := &types.ResumeRecord{
		Contact: types.Contact{Phone: "(555) 123-4567"},
		RawText: "Jane Doe | (555) 123-4567 | jane@gmail.com",
	}

	assert.Empty(t, checkPhoneConsistency(record))
}

func TestCheckLocation(t *testing.T) {
	assert.Empty(t, checkLocation("Austin, TX"))
	assert.Empty(t, checkLocation(""))

	issues := checkLocation("Austin")
	require.Len(t, issues, 1)
	assert.Equal(t, "incomplete_location", issues[0].Category)
}
