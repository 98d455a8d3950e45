package analyticsControllers

import (
	"reflect"
	"testing"
	"time"

	"github.com/Vairous86/bbbeeedddooo/models"
)

func visitOn(day time.Time, source string) models.VisitLog {
	return models.VisitLog{ReferrerSource: source, CreatedAt: day}
}

func orderOn(day time.Time, price float64, currency string, status models.OrderStatus) models.Order {
	return models.Order{Price: price, Currency: currency, Status: status, CreatedAt: day}
}

func TestAggregateTrafficBreakdownTieKeepsEncounterOrder(t *testing.T) {
	day := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	visits := []models.VisitLog{
		visitOn(day, "facebook"),
		visitOn(day, "direct"),
	}
	filter := DateFilter{Year: "2025", Month: "01", Day: "05"}

	stats := Aggregate(visits, nil, filter)

	want := []SourceStat{
		{Source: "facebook", Count: 1, Percentage: 50.0},
		{Source: "direct", Count: 1, Percentage: 50.0},
	}
	if !reflect.DeepEqual(stats.Sources, want) {
		t.Fatalf("expected %+v, got %+v", want, stats.Sources)
	}
}

func TestAggregateProfitExcludesPending(t *testing.T) {
	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderOn(day, 100, models.CurrencySAR, models.OrderStatusConfirmed),
		orderOn(day, 50, models.CurrencySAR, models.OrderStatusPending),
	}

	stats := Aggregate(nil, orders, DateFilter{})

	if stats.Profit.SAR != 100 {
		t.Fatalf("expected SAR profit 100, got %v", stats.Profit.SAR)
	}
	if stats.Profit.EGP != 0 || stats.Profit.USD != 0 {
		t.Fatalf("expected other currencies untouched, got %+v", stats.Profit)
	}
}

func TestAggregateProfitPerCurrency(t *testing.T) {
	day := time.Now()
	orders := []models.Order{
		orderOn(day, 100, models.CurrencySAR, models.OrderStatusConfirmed),
		orderOn(day, 200, models.CurrencyEGP, models.OrderStatusCompleted),
		orderOn(day, 9.5, models.CurrencyUSD, models.OrderStatusConfirmed),
		orderOn(day, 999, models.CurrencyUSD, models.OrderStatusCancelled),
	}

	stats := Aggregate(nil, orders, DateFilter{})

	if stats.Profit.SAR != 100 || stats.Profit.EGP != 200 || stats.Profit.USD != 9.5 {
		t.Fatalf("unexpected profit totals: %+v", stats.Profit)
	}
}

func TestAggregateConversionRateZeroVisits(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Now(), 10, models.CurrencySAR, models.OrderStatusConfirmed),
	}

	stats := Aggregate(nil, orders, DateFilter{})

	if stats.ConversionRate != 0 {
		t.Fatalf("expected conversion rate 0 with no visits, got %v", stats.ConversionRate)
	}
}

func TestAggregateConversionRateUsesUnfilteredVisits(t *testing.T) {
	jan := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	visits := []models.VisitLog{
		visitOn(jan, "facebook"),
		visitOn(feb, "direct"),
		visitOn(feb, "direct"),
		visitOn(feb, "direct"),
	}
	orders := []models.Order{
		orderOn(jan, 100, models.CurrencySAR, models.OrderStatusConfirmed),
	}

	// Filter only matches January, but the denominator stays all 4 visits.
	stats := Aggregate(visits, orders, DateFilter{Year: "2025", Month: "01"})

	if stats.VisitCount != 1 {
		t.Fatalf("expected 1 filtered visit, got %d", stats.VisitCount)
	}
	if stats.ConversionRate != 25.0 {
		t.Fatalf("expected conversion rate 25.0, got %v", stats.ConversionRate)
	}
}

func TestAggregateFilterComponentsMatchAnyWhenEmpty(t *testing.T) {
	visits := []models.VisitLog{
		visitOn(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "google"),
		visitOn(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "direct"),
	}

	stats := Aggregate(visits, nil, DateFilter{Year: "2025"})
	if stats.VisitCount != 1 {
		t.Fatalf("expected 1 visit for 2025, got %d", stats.VisitCount)
	}

	stats = Aggregate(visits, nil, DateFilter{})
	if stats.VisitCount != 2 {
		t.Fatalf("expected 2 visits with empty filter, got %d", stats.VisitCount)
	}

	stats = Aggregate(visits, nil, DateFilter{Year: "all", Month: "all", Day: "all"})
	if stats.VisitCount != 2 {
		t.Fatalf("expected 2 visits with all filter, got %d", stats.VisitCount)
	}
}

func TestAggregateMissingSourceDefaultsToDirect(t *testing.T) {
	visits := []models.VisitLog{
		visitOn(time.Now(), ""),
		visitOn(time.Now(), "direct"),
	}

	stats := Aggregate(visits, nil, DateFilter{})

	if len(stats.Sources) != 1 {
		t.Fatalf("expected one merged source entry, got %+v", stats.Sources)
	}
	if stats.Sources[0].Source != "direct" || stats.Sources[0].Count != 2 {
		t.Fatalf("expected direct x2, got %+v", stats.Sources[0])
	}
}

func TestAggregateIsPure(t *testing.T) {
	day := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	visits := []models.VisitLog{
		visitOn(day, "facebook"),
		visitOn(day, "tiktok"),
		visitOn(day, "facebook"),
	}
	orders := []models.Order{
		orderOn(day, 100, models.CurrencySAR, models.OrderStatusConfirmed),
		orderOn(day, 75, models.CurrencyEGP, models.OrderStatusPending),
	}

	first := Aggregate(visits, orders, DateFilter{})
	second := Aggregate(visits, orders, DateFilter{})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
