package paymentControllers

import (
	"reflect"
	"testing"

	"github.com/Vairous86/bbbeeedddooo/models"
)

func TestResolveDefaultsUnconfiguredMethodsToActive(t *testing.T) {
	settings := Resolve(nil)

	if !settings.STCPayActive || !settings.AlRajhiActive || !settings.VodafoneActive || !settings.InstaPayActive {
		t.Fatalf("expected all methods active by default, got %+v", settings)
	}
	if settings.STCPayNumber != "" || settings.AlRajhiAccount != "" || settings.VodafoneCash != "" || settings.InstaPayAccount != "" {
		t.Fatalf("expected empty account details, got %+v", settings)
	}
}

func TestResolveMergesConfiguredRows(t *testing.T) {
	rows := []models.PaymentSetting{
		{Method: models.MethodSTCPay, Currency: models.CurrencySAR, AccountNumber: "0501112222", QRUrl: "/uploads/payment-qrs/stc.png", IsActive: true},
		{Method: models.MethodVodafoneCash, Currency: models.CurrencyEGP, AccountNumber: "01011122233", IsActive: false},
	}

	settings := Resolve(rows)

	if settings.STCPayNumber != "0501112222" || settings.STCPayQR != "/uploads/payment-qrs/stc.png" {
		t.Fatalf("unexpected STC Pay slot: %+v", settings)
	}
	if settings.VodafoneActive {
		t.Fatal("expected Vodafone Cash to be disabled")
	}
	// Untouched slots keep their defaults.
	if !settings.AlRajhiActive || settings.AlRajhiAccount != "" {
		t.Fatalf("unexpected Al Rajhi slot: %+v", settings)
	}
}

func TestConfiguredPairsMapToDistinctSlots(t *testing.T) {
	var s PaymentSettings
	seen := make(map[*bool]bool)
	for _, pair := range models.ConfiguredPairs {
		account, qr, active := s.slot(pair)
		if account == nil || qr == nil || active == nil {
			t.Fatalf("pair %+v has no slot", pair)
		}
		if seen[active] {
			t.Fatalf("pair %+v shares a slot with another pair", pair)
		}
		seen[active] = true
	}
	if len(seen) != len(models.ConfiguredPairs) {
		t.Fatalf("expected %d slots, got %d", len(models.ConfiguredPairs), len(seen))
	}
}

func TestMethodsForCurrency(t *testing.T) {
	all := Resolve(nil)

	if got := MethodsForCurrency(models.CurrencyEGP, all); !reflect.DeepEqual(got, []string{models.MethodVodafoneCash, models.MethodInstaPay}) {
		t.Fatalf("unexpected EGP methods: %v", got)
	}
	if got := MethodsForCurrency(models.CurrencySAR, all); !reflect.DeepEqual(got, []string{models.MethodSTCPay, models.MethodAlRajhi}) {
		t.Fatalf("unexpected SAR methods: %v", got)
	}
	// Currencies without dedicated wallets fall through to the Saudi methods.
	if got := MethodsForCurrency(models.CurrencyUSD, all); !reflect.DeepEqual(got, []string{models.MethodSTCPay, models.MethodAlRajhi}) {
		t.Fatalf("unexpected USD methods: %v", got)
	}
}

func TestMethodsForCurrencyRespectsDisabledFlags(t *testing.T) {
	settings := Resolve(nil)
	settings.STCPayActive = false

	got := MethodsForCurrency(models.CurrencySAR, settings)
	if !reflect.DeepEqual(got, []string{models.MethodAlRajhi}) {
		t.Fatalf("expected only Al Rajhi, got %v", got)
	}
}

func TestDefaultMethodFor(t *testing.T) {
	all := Resolve(nil)

	if got := DefaultMethodFor(models.CurrencyEGP, all); got != models.MethodVodafoneCash {
		t.Fatalf("expected Vodafone Cash default for EGP, got %s", got)
	}
	if got := DefaultMethodFor(models.CurrencySAR, all); got != models.MethodSTCPay {
		t.Fatalf("expected STC Pay default for SAR, got %s", got)
	}

	// First enabled method wins when the primary is switched off.
	sarOnly := all
	sarOnly.STCPayActive = false
	if got := DefaultMethodFor(models.CurrencySAR, sarOnly); got != models.MethodAlRajhi {
		t.Fatalf("expected Al Rajhi when STC Pay disabled, got %s", got)
	}

	// Everything disabled still yields the currency's primary label.
	none := PaymentSettings{}
	if got := DefaultMethodFor(models.CurrencyEGP, none); got != models.MethodVodafoneCash {
		t.Fatalf("expected Vodafone Cash fallback, got %s", got)
	}
	if got := DefaultMethodFor(models.CurrencyUSD, none); got != models.MethodSTCPay {
		t.Fatalf("expected STC Pay fallback, got %s", got)
	}
}
