package analyticsControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Vairous86/bbbeeedddooo/cache"
)

// Location is the subset of the geo lookup response the visit log keeps.
type Location struct {
	IP      string `json:"ip"`
	Country string `json:"country"`
	City    string `json:"city"`
	Success *bool  `json:"success"`
}

// GeoClient resolves client IPs against an ipwho.is-compatible endpoint.
// Lookups are single-attempt with a short timeout; results are cached by IP
// when a cache is configured.
type GeoClient struct {
	baseURL string
	client  *http.Client
	cache   *cache.Redis
}

func NewGeoClient(baseURL string, timeout time.Duration, c *cache.Redis) *GeoClient {
	return &GeoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		cache:   c,
	}
}

const geoCacheTTL = 24 * time.Hour

// Lookup geolocates one IP. Any failure is returned to the caller, which is
// expected to fall back to "unknown" values rather than retry.
func (g *GeoClient) Lookup(ctx context.Context, ip string) (*Location, error) {
	cacheKey := "geoip:" + ip

	var cached Location
	if ok, err := g.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return &cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/"+ip, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip lookup returned status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, err
	}
	if loc.Success != nil && !*loc.Success {
		return nil, fmt.Errorf("geoip lookup failed for %s", ip)
	}

	_ = g.cache.SetJSON(ctx, cacheKey, loc, geoCacheTTL)
	return &loc, nil
}
