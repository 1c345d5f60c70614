package main

import (
	"errors"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		expected Options
	}{
		{
			name:     "defaults",
			args:     []string{},
			expected: Options{Config: "config.yaml"},
		},
		{
			name:     "config and log level",
			args:     []string{"--config", "/etc/board_syncer.yaml", "--log-level", "debug"},
			expected: Options{Config: "/etc/board_syncer.yaml", LogLevel: "debug"},
		},
		{
			name:     "short aliases",
			args:     []string{"-c", "dev.yaml", "-l", "warn"},
			expected: Options{Config: "dev.yaml", LogLevel: "warn"},
		},
		{
			name:     "once",
			args:     []string{"--once"},
			expected: Options{Config: "config.yaml", Once: true},
		},
		{
			name:     "version",
			args:     []string{"-v"},
			expected: Options{Config: "config.yaml", Version: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"--dry-run"},
			wantErr: true,
		},
		{
			name:    "positional argument",
			args:    []string{"config.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseCLI(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func TestParseCLI_Help(t *testing.T) {
	_, err := ParseCLI([]string{"--help"})

	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	assert.Equal(t, flags.ErrHelp, flagsErr.Type)
}
