package content

import (
	"net/url"
	"strings"

	"github.com/technest/technest/internal/models"
)

const (
	shortcodePrefix = "[[affiliate:"
	shortcodeSuffix = "]]"

	// defaultRefCode tags outbound links for affiliates that have no
	// tracking code of their own.
	defaultRefCode = "technest"
)

// ResolveShortcodes rewrites every [[affiliate:<name>]] token in body
// into a tracked markdown link for the matching affiliate. Matching is
// literal and case-sensitive on the affiliate name; tokens naming an
// unknown affiliate are left verbatim. Already-resolved output contains
// no tokens, so re-running is a no-op.
func ResolveShortcodes(body string, affiliates []models.Affiliate) string {
	if body == "" || len(affiliates) == 0 {
		return body
	}
	for _, affiliate := range affiliates {
		token := shortcodePrefix + affiliate.Name + shortcodeSuffix
		if !strings.Contains(body, token) {
			continue
		}
		body = strings.ReplaceAll(body, token, markdownLink(&affiliate))
	}
	return body
}

// markdownLink renders the inline markdown link an affiliate token
// resolves to.
func markdownLink(affiliate *models.Affiliate) string {
	code := affiliate.AffiliateCode
	if code == "" {
		code = defaultRefCode
	}
	return "[" + affiliate.Name + "](" + trackedURL(affiliate.BaseURL, code) + ")"
}

// trackedURL appends the ref parameter to a base URL, reusing an
// existing query string when the base already carries one.
func trackedURL(baseURL, code string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "ref=" + url.QueryEscape(code)
}
