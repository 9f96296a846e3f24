package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestCheckBullet(t *testing.T) {
	tests := []struct {
		name       string
		bullet     string
		categories []string
	}{
		{
			name:   "solid bullet",
			bullet: "Reduced deployment time from 45 minutes to 8 by parallelizing builds",
		},
		{
			name:       "vague phrase",
			bullet:     "Responsible for maintaining the deployment pipeline and its tooling",
			categories: []string{"vague_language"},
		},
		{
			name:       "critically short",
			bullet:     "Fixed some bugs for the team",
			categories: []string{"bullet_too_short"},
		},
		{
			name:       "fragment",
			bullet:     "Python scripting",
			categories: []string{"bullet_too_short", "fragment"},
		},
		{
			name:       "weak lead verb",
			bullet:     "Helped migrate the billing system to a new payment provider",
			categories: []string{"weak_lead_verb"},
		},
		{
			name:       "overlong bullet",
			bullet:     strings.Repeat("Shipped features across the stack ", 7),
			categories: []string{"bullet_too_long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkBullet(tt.bullet)
			require.Len(t, issues, len(tt.categories))
			for i, category := range tt.categories {
				assert.Equal(t, category, issues[i].Category)
			}
		})
	}
}

func TestCheckBulletLengthSeverity(t *testing.T) {
	short := checkBullet("Shipped two features")
	require.Len(t, short, 1)
	assert.Equal(t, "bullet_too_short", short[0].Category)
	assert.Equal(t, types.SeverityCritical, short[0].Severity)

	thin := checkBullet("Shipped two features this quarter alone")
	require.Len(t, thin, 1)
	assert.Equal(t, "bullet_too_short", thin[0].Category)
	assert.Equal(t, types.SeverityWarning, thin[0].Severity)
}

func TestCheckContentDepthWalksAllBullets(t *testing.T) {
	record := recordWithBullets(
		"• Reduced deployment time from 45 minutes to 8 by parallelizing builds",
		"• Responsible for maintaining the deployment pipeline and its tooling",
		"• Python scripting",
	)

	issues := CheckContentDepth(record)

	assert.Len(t, issuesInCategory(issues, "vague_language"), 1)
	assert.Len(t, issuesInCategory(issues, "fragment"), 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "longer tha...", truncate("longer than ten chars", 10))
}
