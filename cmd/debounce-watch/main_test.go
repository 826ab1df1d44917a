package main

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRun_errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name         string
		args         []string
		wantErr      error
		wantContains string
	}{
		{
			name:    "help",
			args:    []string{"-h"},
			wantErr: flag.ErrHelp,
		},
		{
			name:    "invalid config",
			args:    []string{"-delay", "1s"},
			wantErr: errNoCommand,
		},
		{
			name:         "unwatchable path",
			args:         []string{"-paths", missing, "true"},
			wantContains: "watch " + missing,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := run(tt.args, zerolog.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantContains != "" {
				assert.ErrorContains(t, err, tt.wantContains)
			}
		})
	}
}
