package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoiceRouteNavigation(t *testing.T) {
	svc := NewVoiceService()

	cases := []struct {
		command string
		url     string
	}{
		{"go to dashboard", "/dashboard"},
		{"I want to learn something", "/learn"},
		{"show me the mentors", "/mentors"},
		{"take the assessment", "/assessment"},
		{"logout please", "/logout"},
	}

	for _, tc := range cases {
		cmd := svc.Route(tc.command)
		assert.Equal(t, "navigate", cmd.Action, "command %q", tc.command)
		assert.Equal(t, tc.url, cmd.URL, "command %q", tc.command)
		assert.Empty(t, cmd.Message)
	}
}

func TestVoiceRouteCaseInsensitive(t *testing.T) {
	svc := NewVoiceService()

	cmd := svc.Route("Open The DASHBOARD")
	assert.Equal(t, "navigate", cmd.Action)
	assert.Equal(t, "/dashboard", cmd.URL)
}

func TestVoiceRoutePrecedence(t *testing.T) {
	svc := NewVoiceService()

	// When several keywords appear, the earlier route wins.
	cmd := svc.Route("from the dashboard I want to learn")
	assert.Equal(t, "/dashboard", cmd.URL)

	cmd = svc.Route("learn about my mentors")
	assert.Equal(t, "/learn", cmd.URL)
}

func TestVoiceRouteNotUnderstood(t *testing.T) {
	svc := NewVoiceService()

	cmd := svc.Route("play some music")
	assert.Equal(t, "speak", cmd.Action)
	assert.Empty(t, cmd.URL)
	assert.Equal(t, "I did not understand that command", cmd.Message)
}
