package analyticsControllers

import (
	"net/url"
	"testing"
)

func TestDetectSourceClickIDBeatsUTM(t *testing.T) {
	query := url.Values{}
	query.Set("fbclid", "abc123")
	query.Set("utm_source", "tiktok")

	if got := DetectSource(query, "https://tiktok.com/feed"); got != "facebook" {
		t.Fatalf("expected facebook, got %s", got)
	}
}

func TestDetectSourceEmptyIsDirect(t *testing.T) {
	if got := DetectSource(url.Values{}, ""); got != "direct" {
		t.Fatalf("expected direct, got %s", got)
	}
}

func TestDetectSourceQueryParams(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  string
	}{
		{"tiktok click id", url.Values{"ttclid": {"x"}}, "tiktok"},
		{"google click id", url.Values{"gclid": {"x"}}, "google"},
		{"utm facebook", url.Values{"utm_source": {"Facebook-Ads"}}, "facebook"},
		{"utm fb shorthand", url.Values{"utm_source": {"fb"}}, "facebook"},
		{"utm instagram", url.Values{"utm_source": {"Instagram"}}, "instagram"},
		{"utm twitter", url.Values{"utm_source": {"twitter"}}, "twitter"},
		{"utm snapchat", url.Values{"utm_source": {"snapchat-story"}}, "snapchat"},
		{"unknown utm passthrough lowercased", url.Values{"utm_source": {"NewsLetter"}}, "newsletter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSource(tt.query, ""); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectSourceReferrerHosts(t *testing.T) {
	tests := []struct {
		referrer string
		want     string
	}{
		{"https://m.facebook.com/groups/1", "facebook"},
		{"https://www.tiktok.com/@someone", "tiktok"},
		{"https://www.google.de/search?q=followers", "google"},
		{"https://www.instagram.com/p/xyz", "instagram"},
		{"https://x.com/home", "twitter"},
		{"https://story.snapchat.com/", "snapchat"},
		{"https://youtu.be/abc", "youtube"},
		{"https://www.linkedin.com/feed", "linkedin"},
		{"https://wa.me/966500000000", "whatsapp"},
		{"https://t.me/somechannel", "telegram"},
		{"https://example.org/blog", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.referrer, func(t *testing.T) {
			if got := DetectSource(url.Values{}, tt.referrer); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
