package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdf/internal/kdf"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Settings
		wantErr string
	}{
		{
			name:    "full",
			content: "iterations: 100000\nmax_iterations: 200000\nlog:\n  level: debug\n  format: json\n",
			want: Settings{
				Iterations:    100000,
				MaxIterations: 200000,
				Log:           LogSettings{Level: "debug", Format: "json"},
			},
		},
		{
			name:    "partial keeps defaults",
			content: "iterations: 7\n",
			want:    Settings{Iterations: 7, Log: LogSettings{Level: "info", Format: "text"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    defaultSettings(),
		},
		{
			name:    "unknown key",
			content: "iteration: 7\n",
			wantErr: "failed to parse settings",
		},
		{
			name:    "negative iterations",
			content: "iterations: -1\n",
			wantErr: "failed to parse settings",
		},
		{
			name:    "iterations above ceiling",
			content: "iterations: 10\nmax_iterations: 5\n",
			wantErr: "exceeds max_iterations",
		},
		{
			name:    "bad log format",
			content: "log:\n  format: xml\n",
			wantErr: "unsupported log format",
		},
		{
			name:    "bad log level",
			content: "log:\n  level: bogus\n",
			wantErr: "unsupported log level",
		},
		{
			name:    "warning level",
			content: "log:\n  level: WARNING\n",
			want:    Settings{Log: LogSettings{Level: "WARNING", Format: "text"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadSettings(writeSettings(t, tt.content), true)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	got, err := loadSettings(path, false)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), got)

	_, err = loadSettings(path, true)
	require.Error(t, err)

	got, err = loadSettings("", false)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), got)
}

func TestResolveIterations(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		args     []string
		want     uint32
		wantErr  bool
	}{
		{name: "arg", args: []string{"12"}, want: 12},
		{name: "arg wins over settings", settings: Settings{Iterations: 9}, args: []string{"12"}, want: 12},
		{name: "settings fallback", settings: Settings{Iterations: 9}, want: 9},
		{name: "nothing", wantErr: true},
		{name: "ceiling", settings: Settings{MaxIterations: 10}, args: []string{"11"}, wantErr: true},
		{name: "at ceiling", settings: Settings{MaxIterations: 10}, args: []string{"10"}, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{settings: tt.settings}
			got, err := a.resolveIterations(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIterations_CeilingIsConfigurationSentinel(t *testing.T) {
	a := &app{settings: Settings{MaxIterations: 1}}
	_, err := a.resolveIterations([]string{"2"})
	assert.ErrorIs(t, err, kdf.ErrInvalidIterations)
}
