package api_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "assetops/commands"
	"assetops/commands/api"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		command     string
		positionals []string
		flags       map[string]string
	}{
		{
			name:        "bare view",
			input:       "inventory",
			command:     "inventory",
			positionals: []string{},
			flags:       map[string]string{},
		},
		{
			name:        "leading colon and blanks",
			input:       "  :sites ",
			command:     "sites",
			positionals: []string{},
			flags:       map[string]string{},
		},
		{
			name:        "flags are lower-cased",
			input:       "alerts --Severity=high --status=active",
			command:     "alerts",
			positionals: []string{},
			flags:       map[string]string{"severity": "high", "status": "active"},
		},
		{
			name:        "boolean flag",
			input:       "alerts --all",
			command:     "alerts",
			positionals: []string{},
			flags:       map[string]string{"all": "true"},
		},
		{
			name:        "quoted positional",
			input:       `alerts "fork lift" yard`,
			command:     "alerts",
			positionals: []string{"fork lift", "yard"},
			flags:       map[string]string{},
		},
		{
			name:        "quoted flag value",
			input:       `alerts --search="low battery"`,
			command:     "alerts",
			positionals: []string{},
			flags:       map[string]string{"search": "low battery"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, a, err := api.ParseInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.command, cmd.Name())
			if diff := cmp.Diff(tt.positionals, a.Positionals); diff != "" {
				t.Errorf("positionals (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.flags, a.Flags); diff != "" {
				t.Errorf("flags (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInputAlias(t *testing.T) {
	cmd, _, err := api.ParseInput("assets")
	require.NoError(t, err)
	assert.Equal(t, "assets", cmd.Name())
	assert.Equal(t, "Open Inventory", cmd.Description())
}

func TestParseInputErrors(t *testing.T) {
	_, _, err := api.ParseInput("   ")
	require.ErrorIs(t, err, api.ErrEmptyCommand)

	_, _, err = api.ParseInput("launch rockets")
	require.ErrorIs(t, err, api.ErrUnknown)
	assert.Contains(t, err.Error(), "launch rockets")
}
