package mcp

import (
	"context"
	"fmt"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/chillmcp/pkg/domain"
)

// fakeEngine serves canned results without a real state kernel.
type fakeEngine struct {
	profiles  []domain.BreakProfile
	performed []string
}

func (f *fakeEngine) Breaks() []domain.BreakProfile {
	return f.profiles
}

func (f *fakeEngine) PerformBreak(name string) (domain.BreakResult, error) {
	for _, p := range f.profiles {
		if p.Name == name {
			f.performed = append(f.performed, name)
			return domain.BreakResult{
				Profile:  p,
				Snapshot: domain.Snapshot{Stress: 33, BossAlert: 1},
				Relief:   20,
			}, nil
		}
	}
	return domain.BreakResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownBreak, name)
}

func (f *fakeEngine) Status() domain.Snapshot {
	return domain.Snapshot{Stress: 64, BossAlert: 2}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{profiles: []domain.BreakProfile{{
		Name:        "take_a_break",
		Description: "Take a quick mindful break to reset stress.",
		Summary:     "Quick breathing routine and shoulder stretch to reset focus.",
		Flavor:      "Taking a mindful pause.",
		MinRelief:   12,
		MaxRelief:   28,
	}}}
}

func resultText(t *testing.T, res *mcpgo.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcpgo.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestBreakHandler_RendersContract(t *testing.T) {
	engine := newFakeEngine()
	srv := NewServer(engine)

	res, err := srv.breakHandler("take_a_break")(context.Background(), mcpgo.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := resultText(t, res)
	assert.Contains(t, out, "Break Summary: Quick breathing routine and shoulder stretch to reset focus.")
	assert.Contains(t, out, "Stress Level: 33")
	assert.Contains(t, out, "Boss Alert Level: 1")
	assert.Equal(t, []string{"take_a_break"}, engine.performed)
}

func TestBreakHandler_UnknownAction(t *testing.T) {
	srv := NewServer(newFakeEngine())

	res, err := srv.breakHandler("ghost_break")(context.Background(), mcpgo.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestStatusHandler(t *testing.T) {
	srv := NewServer(newFakeEngine())

	res, err := srv.handleStatus(context.Background(), mcpgo.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := resultText(t, res)
	assert.Contains(t, out, "Stress Level: 64")
	assert.Contains(t, out, "Boss Alert Level: 2")
	assert.NotContains(t, out, "Break Summary:")
}
