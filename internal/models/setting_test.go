package models

import "testing"

func TestSettingsGet(t *testing.T) {
	settings := Settings{
		SettingSiteTitle: "TechNest",
		"empty":          "",
	}

	if got := settings.Get(SettingSiteTitle, "fallback"); got != "TechNest" {
		t.Errorf("Get() = %q, want %q", got, "TechNest")
	}
	if got := settings.Get("missing", "fallback"); got != "fallback" {
		t.Errorf("Get() missing key = %q, want fallback", got)
	}
	if got := settings.Get("empty", "fallback"); got != "fallback" {
		t.Errorf("Get() empty value = %q, want fallback", got)
	}
}

func TestSettingsGetBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{name: "true value", value: "true", fallback: false, expected: true},
		{name: "false value", value: "false", fallback: true, expected: false},
		{name: "numeric true", value: "1", fallback: false, expected: true},
		{name: "garbage uses fallback", value: "maybe", fallback: true, expected: true},
		{name: "missing uses fallback", value: "", fallback: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Settings{}
			if tt.value != "" {
				settings[SettingAllowIndexing] = tt.value
			}
			if got := settings.GetBool(SettingAllowIndexing, tt.fallback); got != tt.expected {
				t.Errorf("GetBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}
