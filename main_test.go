package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtm0/cfmeta/internal/config"
)

func defaultSettings() config.Settings {
	return config.Settings{LogLevel: "info", LogFormat: "text", Output: "text"}
}

func TestVersionCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd, _ := newRootCmd(defaultSettings(), &stdout, &stderr)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "cfmeta v"+Version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestFlagsOverrideSettings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd, a := newRootCmd(defaultSettings(), &stdout, &stderr)
	missing := filepath.Join(t.TempDir(), "missing.nc")
	cmd.SetArgs([]string{"inspect", "--output", "json", "--log-level", "debug", missing})
	if err := cmd.Execute(); err == nil {
		t.Fatal("inspect of a missing file succeeded")
	}
	if a.settings.Output != "json" || a.settings.LogLevel != "debug" {
		t.Errorf("settings = %+v", a.settings)
	}
	if a.logger == nil {
		t.Error("logger not built")
	}
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"output", []string{"inspect", "--output", "xml", "f.nc"}},
		{"log format", []string{"inspect", "--log-format", "logfmt", "f.nc"}},
		{"log level", []string{"inspect", "--log-level", "loud", "f.nc"}},
		{"rules", []string{"inspect", "--rules", "/nonexistent/rules.toml", "f.nc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd, _ := newRootCmd(defaultSettings(), &stdout, &stderr)
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err == nil {
				t.Error("Execute() succeeded")
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected output %q", stdout.String())
			}
		})
	}
}

func TestInspectNeedsFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd, _ := newRootCmd(defaultSettings(), &stdout, &stderr)
	cmd.SetArgs([]string{"inspect"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "arg") {
		t.Errorf("Execute() error = %v", err)
	}
}
