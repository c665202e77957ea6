package domain

import (
	"fmt"
	"strings"
)

// Render produces the response text for a break call. The final three lines
// are a fixed contract parsed by external validators:
//
//	Break Summary: <free text>
//	Stress Level: <0-100>
//	Boss Alert Level: <0-5>
//
// Everything before them is narrative and free-form.
func (r BreakResult) Render() string {
	var b strings.Builder

	for _, note := range r.notes() {
		b.WriteString(note)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Break Summary: %s\n", r.Profile.Summary)
	fmt.Fprintf(&b, "Stress Level: %d\n", r.Snapshot.Stress)
	fmt.Fprintf(&b, "Boss Alert Level: %d", r.Snapshot.BossAlert)
	return b.String()
}

func (r BreakResult) notes() []string {
	notes := []string{r.Profile.Flavor}

	if r.StressGrowth > 0 {
		notes = append(notes, fmt.Sprintf("Stress kept climbing by %d while you were grinding.", r.StressGrowth))
	}

	if r.Relief > 0 {
		notes = append(notes, fmt.Sprintf("You reclaimed %d stress points during this break.", r.Relief))
	} else {
		notes = append(notes, "Stress barely budged—maybe take another breather soon.")
	}

	if r.CooldownSteps > 0 {
		plural := ""
		if r.CooldownSteps > 1 {
			plural = "es"
		}
		notes = append(notes, fmt.Sprintf("The boss cooled down by %d notch%s.", r.CooldownSteps, plural))
	}

	switch {
	case r.AlertRaised && r.Snapshot.BossAlert >= MaxBossAlert:
		notes = append(notes, "🚨 Boss Alert Level maxed out! Pretend to be super busy.")
	case r.AlertRaised:
		notes = append(notes, "⚠️ Boss senses something odd—watch your timing.")
	default:
		notes = append(notes, "✅ Boss remained blissfully unaware.")
	}

	return notes
}

// Render produces the status-query text. It carries the two counter lines of
// the response contract but no Break Summary, since no break was taken.
func (s Snapshot) Render() string {
	var b strings.Builder
	b.WriteString("🧾 Office pulse check—no break taken.\n")
	fmt.Fprintf(&b, "Stress Level: %d\n", s.Stress)
	fmt.Fprintf(&b, "Boss Alert Level: %d", s.BossAlert)
	return b.String()
}
