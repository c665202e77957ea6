package domain_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/chillmcp/pkg/domain"
)

// The patterns external validators parse responses with.
var (
	reSummary   = regexp.MustCompile(`Break Summary:\s*(.+?)(?:\n|$)`)
	reStress    = regexp.MustCompile(`Stress Level:\s*(\d{1,3})`)
	reBossAlert = regexp.MustCompile(`Boss Alert Level:\s*([0-5])`)
)

func sampleProfile() domain.BreakProfile {
	return domain.BreakProfile{
		Name:      "coffee_mission",
		Summary:   "Volunteered for the coffee run and detoured past every colleague.",
		Flavor:    "☕ Coffee mission underway—made sure to chat up three teammates.",
		MinRelief: 16,
		MaxRelief: 32,
	}
}

func TestRender_RoundTrip(t *testing.T) {
	res := domain.BreakResult{
		Profile:  sampleProfile(),
		Snapshot: domain.Snapshot{Stress: 47, BossAlert: 2},
		Relief:   21,
	}

	out := res.Render()

	summary := reSummary.FindStringSubmatch(out)
	require.NotNil(t, summary)
	assert.Equal(t, res.Profile.Summary, summary[1])

	stress := reStress.FindStringSubmatch(out)
	require.NotNil(t, stress)
	got, err := strconv.Atoi(stress[1])
	require.NoError(t, err)
	assert.Equal(t, 47, got)

	alert := reBossAlert.FindStringSubmatch(out)
	require.NotNil(t, alert)
	got, err = strconv.Atoi(alert[1])
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestRender_BoundaryValues(t *testing.T) {
	for _, snap := range []domain.Snapshot{
		{Stress: 0, BossAlert: 0},
		{Stress: 100, BossAlert: 5},
	} {
		out := domain.BreakResult{Profile: sampleProfile(), Snapshot: snap}.Render()
		stress := reStress.FindStringSubmatch(out)
		require.NotNil(t, stress)
		assert.Equal(t, strconv.Itoa(snap.Stress), stress[1])
		alert := reBossAlert.FindStringSubmatch(out)
		require.NotNil(t, alert)
		assert.Equal(t, strconv.Itoa(snap.BossAlert), alert[1])
	}
}

func TestRender_Notes(t *testing.T) {
	t.Run("maxed alert warns loudly", func(t *testing.T) {
		out := domain.BreakResult{
			Profile:     sampleProfile(),
			Snapshot:    domain.Snapshot{Stress: 10, BossAlert: 5},
			Relief:      12,
			AlertRaised: true,
		}.Render()
		assert.Contains(t, out, "maxed out")
		assert.NotContains(t, out, "blissfully unaware")
	})

	t.Run("raised but not maxed", func(t *testing.T) {
		out := domain.BreakResult{
			Profile:     sampleProfile(),
			Snapshot:    domain.Snapshot{Stress: 10, BossAlert: 2},
			Relief:      12,
			AlertRaised: true,
		}.Render()
		assert.Contains(t, out, "Boss senses something odd")
	})

	t.Run("unnoticed break", func(t *testing.T) {
		out := domain.BreakResult{
			Profile:  sampleProfile(),
			Snapshot: domain.Snapshot{Stress: 10, BossAlert: 0},
			Relief:   12,
		}.Render()
		assert.Contains(t, out, "blissfully unaware")
	})

	t.Run("zero relief nudges another breather", func(t *testing.T) {
		out := domain.BreakResult{
			Profile:  sampleProfile(),
			Snapshot: domain.Snapshot{Stress: 0, BossAlert: 0},
		}.Render()
		assert.Contains(t, out, "barely budged")
	})

	t.Run("passive deltas are narrated", func(t *testing.T) {
		out := domain.BreakResult{
			Profile:       sampleProfile(),
			Snapshot:      domain.Snapshot{Stress: 30, BossAlert: 1},
			Relief:        5,
			StressGrowth:  4,
			CooldownSteps: 2,
		}.Render()
		assert.Contains(t, out, "climbing by 4")
		assert.Contains(t, out, "cooled down by 2 notches")
	})
}

func TestSnapshotRender_ContractLines(t *testing.T) {
	out := domain.Snapshot{Stress: 73, BossAlert: 4}.Render()

	assert.Nil(t, reSummary.FindStringSubmatch(out))
	stress := reStress.FindStringSubmatch(out)
	require.NotNil(t, stress)
	assert.Equal(t, "73", stress[1])
	alert := reBossAlert.FindStringSubmatch(out)
	require.NotNil(t, alert)
	assert.Equal(t, "4", alert[1])
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, sampleProfile().Validate())

	bad := sampleProfile()
	bad.MinRelief = 0
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidProfile)

	bad = sampleProfile()
	bad.MaxRelief = 101
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidProfile)

	bad = sampleProfile()
	bad.MinRelief, bad.MaxRelief = 30, 20
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidProfile)

	assert.ErrorIs(t, domain.BreakProfile{}.Validate(), domain.ErrInvalidProfile)
}
