package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hooly/hooly/internal/guard"
)

func TestGuards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		decide        func(bool) guard.Decision
		authenticated bool
		wantAllowed   bool
		wantLocation  string
	}{
		{"protected anonymous", guard.Protected, false, false, "/login"},
		{"protected authenticated", guard.Protected, true, true, ""},
		{"public anonymous", guard.Public, false, true, ""},
		{"public authenticated", guard.Public, true, false, "/dashboard"},
		{"fallback anonymous", func(bool) guard.Decision { return guard.Fallback() }, false, false, "/login"},
		{"fallback authenticated", func(bool) guard.Decision { return guard.Fallback() }, true, false, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := tt.decide(tt.authenticated)
			assert.Equal(t, tt.wantAllowed, d.Allowed())
			assert.Equal(t, tt.wantLocation, d.Location())
		})
	}
}

func TestDecision(t *testing.T) {
	t.Parallel()

	assert.True(t, guard.Allow.Allowed())
	assert.True(t, guard.Decision{}.Allowed())
	assert.Equal(t, guard.Allow, guard.Decision{})

	d := guard.RedirectTo("/somewhere")
	assert.False(t, d.Allowed())
	assert.Equal(t, "/somewhere", d.Location())
}
