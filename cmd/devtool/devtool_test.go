package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := newRegistry()

	names := make([]string, 0)
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"bench", "check-deps", "health-check"}, names)

	_, ok := r.Get("deploy")
	assert.False(t, ok)
}

func TestRegistry_WriteHelp(t *testing.T) {
	var buf bytes.Buffer
	newRegistry().WriteHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: devtool")
	for _, c := range newRegistry().List() {
		assert.Contains(t, out, c.Name())
		assert.Contains(t, out, c.Description())
	}
}

func TestCheckHostile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain flag", "-bench=BenchmarkForge_Craft", false},
		{"url with query", "http://localhost:8080/readyz?a=1&b=2", false},
		{"pipe", "a | b", true},
		{"substitution", "$(rm -rf /)", true},
		{"newline", "a\nb", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHostile(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBenchCommand_UnknownSubcommand(t *testing.T) {
	err := (&BenchCommand{}).Run([]string{"explode"})
	assert.ErrorContains(t, err, "unknown subcommand")
}
