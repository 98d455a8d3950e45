package orderControllers

import (
	"testing"

	"github.com/Vairous86/bbbeeedddooo/models"
)

func TestValidateWhatsappLength(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"too short", "12345", true},
		{"min length", "0501234567", false},
		{"max length", "+96650123456789", false},
		{"too long", "+9665012345678901", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := make(map[string]string)
			validateWhatsapp(tt.number, errs)
			if (len(errs) > 0) != tt.wantErr {
				t.Fatalf("number %q: expected error=%v, got %v", tt.number, tt.wantErr, errs)
			}
		})
	}
}

func TestValidateAccountURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://instagram.com/someone", false},
		{"http://tiktok.com/@user", false},
		{"not-a-url", true},
		{"", true},
		{"/relative/path", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			errs := make(map[string]string)
			validateAccountURL(tt.url, errs)
			if (len(errs) > 0) != tt.wantErr {
				t.Fatalf("url %q: expected error=%v, got %v", tt.url, tt.wantErr, errs)
			}
		})
	}
}

func TestValidateQuantityBounds(t *testing.T) {
	tests := []struct {
		quantity int
		wantErr  bool
	}{
		{99, true},
		{100, false},
		{100000, false},
		{100001, true},
	}
	for _, tt := range tests {
		errs := make(map[string]string)
		validateQuantity(tt.quantity, errs)
		if (len(errs) > 0) != tt.wantErr {
			t.Fatalf("quantity %d: expected error=%v, got %v", tt.quantity, tt.wantErr, errs)
		}
	}
}

func TestValidateFreeTextMinLength(t *testing.T) {
	errs := make(map[string]string)
	validateFreeText("hey", errs)
	if len(errs) == 0 {
		t.Fatal("expected error for short text")
	}

	errs = make(map[string]string)
	validateFreeText("please boost my account", errs)
	if len(errs) != 0 {
		t.Fatalf("expected no error, got %v", errs)
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"stcpay", models.MethodSTCPay},
		{"alrajhi", models.MethodAlRajhi},
		{"vodafone", models.MethodVodafoneCash},
		{"free", models.MethodFree},
		{"instapay", "instapay"},
		{"somethingelse", "somethingelse"},
	}
	for _, tt := range tests {
		if got := NormalizePaymentMethod(tt.code); got != tt.want {
			t.Fatalf("code %q: expected %q, got %q", tt.code, tt.want, got)
		}
	}
}

func TestMethodEnabledIgnoresCaseAndSpacing(t *testing.T) {
	enabled := []string{models.MethodVodafoneCash, models.MethodInstaPay}

	if !methodEnabled("instapay", enabled) {
		t.Fatal("expected raw instapay code to match InstaPay label")
	}
	if !methodEnabled(models.MethodVodafoneCash, enabled) {
		t.Fatal("expected exact label to match")
	}
	if methodEnabled(models.MethodSTCPay, enabled) {
		t.Fatal("did not expect STC Pay to match EGP methods")
	}
}

func TestPriceForPackageExplicitPrice(t *testing.T) {
	svc := models.Service{Prices: models.PriceMap{"USD": 9}}
	pkg := models.ServicePackage{Units: 500, Price: models.PriceMap{"USD": 3.75}}

	if got := PriceForPackage(pkg, svc, "USD"); got != 3.75 {
		t.Fatalf("expected explicit package price 3.75, got %v", got)
	}
}

func TestPriceForPackageFallsBackToServicePrice(t *testing.T) {
	svc := models.Service{Prices: models.PriceMap{"USD": 9}}
	pkg := models.ServicePackage{Units: 500, Price: models.PriceMap{"SAR": 20}}

	// Missing USD entry pro-rates from the service's per-1000 price.
	if got := PriceForPackage(pkg, svc, "USD"); got != 4.5 {
		t.Fatalf("expected fallback price 4.5, got %v", got)
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "Confirmed", "COMPLETED", "cancelled"} {
		if _, err := mapOrderStatus(valid); err != nil {
			t.Fatalf("expected %q to be valid: %v", valid, err)
		}
	}
	if _, err := mapOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestPermissiveTransitionsAllowAnyChange(t *testing.T) {
	policy := models.PermissiveTransitions{}
	statuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if !policy.Allowed(from, to) {
				t.Fatalf("expected %s -> %s to be allowed", from, to)
			}
		}
	}
}
