package analyticsControllers

import (
	"net/url"
	"strings"
)

// DetectSource derives a lowercase traffic-source label from a page URL's
// query parameters and the referrer. Click-id parameters win over
// utm_source, which wins over the referrer host. No query hint and no
// referrer means a direct visit.
func DetectSource(query url.Values, referrer string) string {
	utm := strings.ToLower(query.Get("utm_source"))

	if query.Get("fbclid") != "" || strings.Contains(utm, "facebook") || strings.Contains(utm, "fb") {
		return "facebook"
	}
	if query.Get("ttclid") != "" || strings.Contains(utm, "tiktok") {
		return "tiktok"
	}
	if query.Get("gclid") != "" || strings.Contains(utm, "google") {
		return "google"
	}
	if strings.Contains(utm, "instagram") || strings.Contains(utm, "ig") {
		return "instagram"
	}
	if strings.Contains(utm, "twitter") || strings.Contains(utm, "x.com") {
		return "twitter"
	}
	if strings.Contains(utm, "snapchat") {
		return "snapchat"
	}
	if utm != "" {
		return utm
	}

	ref := strings.ToLower(referrer)
	if ref == "" {
		return "direct"
	}

	switch {
	case strings.Contains(ref, "facebook.com"), strings.Contains(ref, "fb.com"), strings.Contains(ref, "m.facebook.com"):
		return "facebook"
	case strings.Contains(ref, "tiktok.com"):
		return "tiktok"
	case strings.Contains(ref, "google.com"), strings.Contains(ref, "google."):
		return "google"
	case strings.Contains(ref, "instagram.com"):
		return "instagram"
	case strings.Contains(ref, "twitter.com"), strings.Contains(ref, "x.com"):
		return "twitter"
	case strings.Contains(ref, "snapchat.com"):
		return "snapchat"
	case strings.Contains(ref, "youtube.com"), strings.Contains(ref, "youtu.be"):
		return "youtube"
	case strings.Contains(ref, "linkedin.com"):
		return "linkedin"
	case strings.Contains(ref, "whatsapp.com"), strings.Contains(ref, "wa.me"):
		return "whatsapp"
	case strings.Contains(ref, "t.me"), strings.Contains(ref, "telegram"):
		return "telegram"
	}

	return "other"
}
