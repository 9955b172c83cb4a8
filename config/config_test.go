// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Typed getters, defaults, and config replacement.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSectionAndGetters(t *testing.T) {
	cfg := Config{
		"editor": map[string]interface{}{
			"command": "nvim",
			"args":    []interface{}{"-u", "NONE"},
		},
		"ui": map[string]interface{}{
			"batch_queue": float64(16),
		},
		"sessions": map[string]interface{}{
			"enabled": "false",
		},
	}

	if cfg.Section("missing") != nil {
		t.Fatalf("missing section should be nil")
	}
	if got := cfg.GetString("editor", "command", "vi"); got != "nvim" {
		t.Fatalf("GetString = %q", got)
	}
	if got := cfg.GetString("editor", "missing", "vi"); got != "vi" {
		t.Fatalf("missing key should fall back, got %q", got)
	}
	if got := cfg.GetStrings("editor", "args"); len(got) != 2 || got[0] != "-u" {
		t.Fatalf("GetStrings = %+v", got)
	}
	if got := cfg.GetInt("ui", "batch_queue", 8); got != 16 {
		t.Fatalf("GetInt should handle JSON float64, got %d", got)
	}
	if got := cfg.GetBool("sessions", "enabled", true); got {
		t.Fatalf("GetBool should parse string booleans")
	}
	if got := cfg.GetInt("missing", "key", 7); got != 7 {
		t.Fatalf("missing section should fall back, got %d", got)
	}
}

func TestRegisterDefaultsDoesNotOverwrite(t *testing.T) {
	cfg := Config{
		"editor": map[string]interface{}{"command": "custom-nvim"},
	}
	cfg.RegisterDefaults("editor", Section{
		"command": "nvim",
		"args":    []interface{}{},
	})

	if got := cfg.GetString("editor", "command", ""); got != "custom-nvim" {
		t.Fatalf("existing key overwritten: %q", got)
	}
	if cfg.Section("editor")["args"] == nil {
		t.Fatalf("missing key not filled in")
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := Path()
	if err != nil {
		t.Fatalf("resolve path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"editor":{"command":"other-nvim"}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	cfg := Get()
	if got := cfg.GetString("editor", "command", ""); got != "other-nvim" {
		t.Fatalf("reload did not pick up the file, command = %q", got)
	}
	// Keys the file omits still get defaults.
	if cfg.GetInt("sessions", "keep_recent", 0) == 0 {
		t.Fatalf("defaults missing after reload")
	}

	if err := os.WriteFile(path, []byte(`{"editor":{"command":"third"}}`), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := Reload(); err != nil {
		t.Fatalf("second reload: %v", err)
	}
	if got := Get().GetString("editor", "command", ""); got != "third" {
		t.Fatalf("second reload stale, command = %q", got)
	}
}

func TestSetAppliesDefaults(t *testing.T) {
	Set(Config{})
	cfg := Get()

	if got := cfg.GetString("editor", "command", ""); got != "nvim" {
		t.Fatalf("defaults not applied on Set, command = %q", got)
	}
	if !cfg.GetBool("sessions", "enabled", false) {
		t.Fatalf("sessions should default to enabled")
	}
}
