// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers over the JSON config data.

package config

import "strconv"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Section returns the named section or nil if missing.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	if raw, ok := c[name]; ok {
		switch v := raw.(type) {
		case Section:
			return v
		case map[string]interface{}:
			return Section(v)
		}
	}
	return nil
}

// RegisterDefaults fills in section keys without overwriting existing ones.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section)
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// GetString retrieves a string value from the config.
func (c Config) GetString(section, key, defaultValue string) string {
	s := c.Section(section)
	if s == nil {
		return defaultValue
	}
	if val, ok := s[key].(string); ok {
		return val
	}
	return defaultValue
}

// GetStrings retrieves a string list from the config.
func (c Config) GetStrings(section, key string) []string {
	s := c.Section(section)
	if s == nil {
		return nil
	}
	raw, ok := s[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// GetInt retrieves an integer value from the config. JSON numbers arrive as
// float64.
func (c Config) GetInt(section, key string, defaultValue int) int {
	s := c.Section(section)
	if s == nil {
		return defaultValue
	}
	switch v := s[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the config.
func (c Config) GetBool(section, key string, defaultValue bool) bool {
	s := c.Section(section)
	if s == nil {
		return defaultValue
	}
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
