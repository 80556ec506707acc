package util

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves href against base. Already-absolute links and
// unparsable input come back unchanged.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// OfferSlug extracts the stable stem of a detail link, used to derive
// offer ids: "/fr-fr/emplois/42310521.html" -> "42310521".
func OfferSlug(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if i := strings.LastIndexByte(href, '/'); i >= 0 {
		href = href[i+1:]
	}
	if i := strings.IndexByte(href, '.'); i >= 0 {
		href = href[:i]
	}
	return href
}
