package analyticsControllers

import (
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

// DateFilter selects records by calendar date. Components are formatted
// strings ("2025", "01", "05"); an empty or "all" component matches
// everything.
type DateFilter struct {
	Year  string
	Month string
	Day   string
}

// SourceStat is one row of the traffic-source breakdown.
type SourceStat struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ProfitTotals carries confirmed revenue per currency. No cross-currency
// conversion happens anywhere.
type ProfitTotals struct {
	SAR float64 `json:"sar"`
	EGP float64 `json:"egp"`
	USD float64 `json:"usd"`
}

// Stats is the dashboard analytics snapshot for one date filter.
type Stats struct {
	VisitCount     int          `json:"visit_count"`
	OrderCount     int          `json:"order_count"`
	Profit         ProfitTotals `json:"profit"`
	ConversionRate float64      `json:"conversion_rate"`
	Sources        []SourceStat `json:"sources"`
}

func matchesFilter(t time.Time, f DateFilter) bool {
	if f.Year != "" && f.Year != "all" && t.Format("2006") != f.Year {
		return false
	}
	if f.Month != "" && f.Month != "all" && t.Format("01") != f.Month {
		return false
	}
	if f.Day != "" && f.Day != "all" && t.Format("02") != f.Day {
		return false
	}
	return true
}

func isConfirmed(status models.OrderStatus) bool {
	return status == models.OrderStatusConfirmed || status == models.OrderStatusCompleted
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate computes the dashboard metrics from the full visit and order
// sets. Pure: same inputs always produce the same snapshot.
//
// The conversion rate intentionally divides confirmed filtered orders by the
// total unfiltered visit count, matching how the dashboard has always
// reported it.
func Aggregate(visits []models.VisitLog, orders []models.Order, filter DateFilter) Stats {
	var filteredVisits []models.VisitLog
	for _, v := range visits {
		if matchesFilter(v.CreatedAt, filter) {
			filteredVisits = append(filteredVisits, v)
		}
	}

	var filteredOrders []models.Order
	for _, o := range orders {
		if matchesFilter(o.CreatedAt, filter) {
			filteredOrders = append(filteredOrders, o)
		}
	}

	var profit ProfitTotals
	confirmedCount := 0
	for _, o := range filteredOrders {
		if !isConfirmed(o.Status) {
			continue
		}
		confirmedCount++
		switch o.Currency {
		case models.CurrencySAR:
			profit.SAR += o.Price
		case models.CurrencyEGP:
			profit.EGP += o.Price
		case models.CurrencyUSD:
			profit.USD += o.Price
		}
	}

	conversionRate := 0.0
	if len(visits) > 0 {
		conversionRate = round1(float64(confirmedCount) / float64(len(visits)) * 100)
	}

	// Group filtered visits by source, keeping first-encounter order so that
	// equal counts sort deterministically.
	counts := make(map[string]int)
	var encounter []string
	for _, v := range filteredVisits {
		source := v.ReferrerSource
		if source == "" {
			source = "direct"
		}
		if _, seen := counts[source]; !seen {
			encounter = append(encounter, source)
		}
		counts[source]++
	}

	sources := make([]SourceStat, 0, len(encounter))
	for _, s := range encounter {
		pct := 0.0
		if len(filteredVisits) > 0 {
			pct = round1(float64(counts[s]) / float64(len(filteredVisits)) * 100)
		}
		sources = append(sources, SourceStat{Source: s, Count: counts[s], Percentage: pct})
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Count > sources[j].Count
	})

	return Stats{
		VisitCount:     len(filteredVisits),
		OrderCount:     len(filteredOrders),
		Profit:         profit,
		ConversionRate: conversionRate,
		Sources:        sources,
	}
}

// GetStatsHandler computes dashboard analytics for the requested date
// filter (?year=&month=&day=, each optional).
func GetStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var visits []models.VisitLog
		if err := db.Find(&visits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var orders []models.Order
		if err := db.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		filter := DateFilter{
			Year:  c.Query("year"),
			Month: c.Query("month"),
			Day:   c.Query("day"),
		}
		c.JSON(http.StatusOK, Aggregate(visits, orders, filter))
	}
}
