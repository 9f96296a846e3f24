package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func cleanRecord() *types.ResumeRecord {
	body := strings.Repeat("Delivered measurable results across projects and teams. ", 60)
	return &types.ResumeRecord{
		Contact: types.Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Metadata: types.Metadata{PageCount: 1, WordCount: 480},
		RawText:  body,
	}
}

func TestSimulate_CleanResumePassesEverywhere(t *testing.T) {
	sim := New()

	result := sim.Simulate(cleanRecord())

	assert.Equal(t, 3, result.PlatformsPassed)
	for name, platform := range result.Platforms {
		assert.InDelta(t, 100.0, platform.PassProbability, 0.001, "platform %s", name)
		assert.Equal(t, "excellent", platform.Rating)
		assert.Empty(t, platform.Issues)
	}
	// 100 on every modeled platform plus 75 for the 20% "other" share.
	assert.InDelta(t, 95.0, result.OverallScore, 0.001)
}

func TestSimulatePlatform_MarkdownTableDeduction(t *testing.T) {
	sim := New()
	record := cleanRecord()
	record.RawText += "\n| Skill | Years |\n| Go | 5 |\n"

	result, err := sim.SimulatePlatform(PlatformTaleo, record)
	require.NoError(t, err)

	assert.InDelta(t, 75.0, result.PassProbability, 0.001)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, CheckTables, result.Issues[0].Category)
	assert.Equal(t, types.SeverityCritical, result.Issues[0].Severity)
}

func TestSimulatePlatform_UnknownPlatform(t *testing.T) {
	sim := New()

	_, err := sim.SimulatePlatform("lever", cleanRecord())

	assert.Error(t, err)
}

func TestSimulate_MonotonicUnderInjectedIssues(t *testing.T) {
	sim := New()

	record := cleanRecord()
	base := sim.Simulate(record)

	record.RawText += "\n| a | b |\n"
	withTable := sim.Simulate(record)

	record.Contact.Phone = ""
	withTableAndNoPhone := sim.Simulate(record)

	for _, name := range Platforms() {
		assert.GreaterOrEqual(t, base.Platforms[name].PassProbability, withTable.Platforms[name].PassProbability)
		assert.GreaterOrEqual(t, withTable.Platforms[name].PassProbability, withTableAndNoPhone.Platforms[name].PassProbability)
	}
	assert.GreaterOrEqual(t, base.OverallScore, withTable.OverallScore)
	assert.GreaterOrEqual(t, withTable.OverallScore, withTableAndNoPhone.OverallScore)
}

func TestSimulate_StrictPlatformPenalizedHardest(t *testing.T) {
	sim := New()
	record := cleanRecord()
	record.RawText += "\n| layout | table |\nPage 1 of 2\n"

	result := sim.Simulate(record)

	taleo := result.Platforms[PlatformTaleo].PassProbability
	workday := result.Platforms[PlatformWorkday].PassProbability
	greenhouse := result.Platforms[PlatformGreenhouse].PassProbability
	assert.Less(t, taleo, workday)
	assert.Less(t, workday, greenhouse)
}

func TestDetect_MissingContact(t *testing.T) {
	record := cleanRecord()
	record.Contact.Email = ""

	detections := detectStructuralIssues(record)

	found := false
	for _, d := range detections {
		if d.check == CheckMissingContact {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_LowParseQuality(t *testing.T) {
	record := cleanRecord()
	record.Metadata.WordCount = 90
	record.Metadata.PageCount = 2

	detections := detectStructuralIssues(record)

	found := false
	for _, d := range detections {
		if d.check == CheckParseQuality {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_ColumnarLayout(t *testing.T) {
	record := cleanRecord()
	record.RawText = strings.Repeat("Skills        Experience\nGo            Built services\n", 6)

	detections := detectStructuralIssues(record)

	found := false
	for _, d := range detections {
		if d.check == CheckMultiColumn {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRatingLadder(t *testing.T) {
	assert.Equal(t, "excellent", ratingFor(95))
	assert.Equal(t, "good", ratingFor(85))
	assert.Equal(t, "fair", ratingFor(72))
	assert.Equal(t, "poor", ratingFor(60))
	assert.Equal(t, "failing", ratingFor(30))
}
