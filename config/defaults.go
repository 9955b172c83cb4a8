// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the neoview configuration sections.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("editor", Section{
		"command": "nvim",
		"args":    []interface{}{},
	})
	cfg.RegisterDefaults("ui", Section{
		"batch_queue": 8,
	})
	cfg.RegisterDefaults("log", Section{
		"file": "",
	})
	cfg.RegisterDefaults("sessions", Section{
		"enabled":     true,
		"keep_recent": 50,
	})
}
