// Package breaks holds the catalog of break actions: the eight built-in
// profiles plus optional YAML overrides for self-hosted deployments.
package breaks

import (
	"fmt"

	"github.com/aretw0/chillmcp/pkg/domain"
)

// Catalog is an ordered, name-indexed set of break profiles. It is built once
// at startup and read-only afterwards.
type Catalog struct {
	profiles map[string]domain.BreakProfile
	order    []string
}

// Builtin returns the catalog of the eight stock break actions.
func Builtin() *Catalog {
	c := &Catalog{profiles: make(map[string]domain.BreakProfile)}
	for _, p := range builtinProfiles {
		c.profiles[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	return c
}

// Get looks up a profile by tool name.
func (c *Catalog) Get(name string) (domain.BreakProfile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Profiles returns the profiles in registration order.
func (c *Catalog) Profiles() []domain.BreakProfile {
	out := make([]domain.BreakProfile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.profiles[name])
	}
	return out
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) validate() error {
	for _, name := range c.order {
		if err := c.profiles[name].Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

var builtinProfiles = []domain.BreakProfile{
	{
		Name:        "take_a_break",
		Description: "Take a quick mindful break to reset stress.",
		Summary:     "Quick breathing routine and shoulder stretch to reset focus.",
		Flavor:      "🧘 Taking a mindful pause with deep breathing and a stretch.",
		MinRelief:   12,
		MaxRelief:   28,
	},
	{
		Name:        "watch_netflix",
		Description: "Secretly watch a mini Netflix episode.",
		Summary:     "Streamed a micro-episode under the desk for maximum serotonin.",
		Flavor:      "📺 Sneaking in a bite-sized Netflix binge—headphones on, world off.",
		MinRelief:   18,
		MaxRelief:   35,
	},
	{
		Name:        "show_meme",
		Description: "Show the meme of the day for a quick laugh.",
		Summary:     "Reviewed the meme-of-the-day to keep morale high.",
		Flavor:      "😂 Scrolling through peak meme culture for morale boosts.",
		MinRelief:   10,
		MaxRelief:   22,
	},
	{
		Name:        "bathroom_break",
		Description: "Disappear for a bathroom break (with bonus scrolling).",
		Summary:     "Took the long route to the restroom with extra phone scroll time.",
		Flavor:      "🛁 Bathroom break engaged—phone in hand, vibes immaculate.",
		MinRelief:   20,
		MaxRelief:   40,
	},
	{
		Name:        "coffee_mission",
		Description: "Volunteer for a coffee run that definitely takes too long.",
		Summary:     "Volunteered for the coffee run and detoured past every colleague.",
		Flavor:      "☕ Coffee mission underway—made sure to chat up three teammates.",
		MinRelief:   16,
		MaxRelief:   32,
	},
	{
		Name:        "urgent_call",
		Description: "Take an urgent call outside to escape for a moment.",
		Summary:     "Stepped outside for the 'urgent' call that mysteriously reset stress.",
		Flavor:      "📞 Phone to ear, pacing dramatically—must be something crucial.",
		MinRelief:   22,
		MaxRelief:   38,
	},
	{
		Name:        "deep_thinking",
		Description: "Pretend to be deep in thought while actually resting.",
		Summary:     "Stared intensely into space while pretending to solve quantum problems.",
		Flavor:      "🤔 Gazing into the void, radiating genius energy.",
		MinRelief:   14,
		MaxRelief:   27,
	},
	{
		Name:        "email_organizing",
		Description: "Organize emails (or online carts) to chill a bit.",
		Summary:     "Allegedly organized the inbox but really curated an online cart.",
		Flavor:      "📧 Inbox tab open, shopping tab slightly more open.",
		MinRelief:   11,
		MaxRelief:   24,
	},
}
