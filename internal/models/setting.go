package models

import "strconv"

// Setting represents a single site-wide key/value pair
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(255);column:key" json:"key"`
	Value string `gorm:"type:text;column:value" json:"value"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// Well-known settings keys
const (
	SettingSiteTitle       = "site_title"
	SettingSiteDescription = "site_description"
	SettingSiteURL         = "site_url"
	SettingAnalyticsID     = "analytics_id"
	SettingTitleTemplate   = "title_template"
	SettingAllowIndexing   = "allow_indexing"
	SettingSitemapFreq     = "sitemap_freq"
)

// Settings is the flat key/value map the settings table is loaded into.
type Settings map[string]string

// Get returns the value for key, or fallback when the key is absent or empty.
func (s Settings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// GetBool parses the value for key as a boolean, defaulting to fallback.
func (s Settings) GetBool(key string, fallback bool) bool {
	if v, ok := s[key]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// SiteTitle returns the configured site title.
func (s Settings) SiteTitle() string {
	return s.Get(SettingSiteTitle, "")
}

// SiteDescription returns the configured site description.
func (s Settings) SiteDescription() string {
	return s.Get(SettingSiteDescription, "")
}

// SiteURL returns the canonical base URL of the site.
func (s Settings) SiteURL() string {
	return s.Get(SettingSiteURL, "")
}
