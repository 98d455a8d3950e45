package orderControllers

import (
	"net/url"
	"strings"

	"github.com/Vairous86/bbbeeedddooo/models"
)

const (
	minQuantity = 100
	maxQuantity = 100000

	minWhatsappLen = 10
	maxWhatsappLen = 15

	minServiceTextLen = 5
)

// validateWhatsapp checks the number length shared by both order branches.
func validateWhatsapp(number string, errs map[string]string) {
	if len(number) < minWhatsappLen {
		errs["whatsapp_number"] = "Please enter a valid WhatsApp number"
	} else if len(number) > maxWhatsappLen {
		errs["whatsapp_number"] = "Phone number too long"
	}
}

// validateFreeText checks the text-submission branch fields.
func validateFreeText(text string, errs map[string]string) {
	if len(strings.TrimSpace(text)) < minServiceTextLen {
		errs["service_text"] = "Please enter valid text"
	}
}

// validateAccountURL checks that the target is a well-formed absolute URL.
func validateAccountURL(accountURL string, errs map[string]string) {
	parsed, err := url.Parse(accountURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs["account_url"] = "Please enter a valid URL"
	}
}

// validateQuantity enforces the order size bounds.
func validateQuantity(quantity int, errs map[string]string) {
	if quantity < minQuantity {
		errs["quantity"] = "Minimum quantity is 100"
	} else if quantity > maxQuantity {
		errs["quantity"] = "Maximum quantity is 100,000"
	}
}

// validateFreeOrderInput checks a free/text submission. Text services need a
// minimal text body; everything else needs a target URL.
func validateFreeOrderInput(req CreateOrderRequest, isText bool) map[string]string {
	errs := make(map[string]string)
	validateWhatsapp(req.WhatsappNumber, errs)
	if isText {
		validateFreeText(req.ServiceText, errs)
	} else {
		validateAccountURL(req.AccountURL, errs)
	}
	return errs
}

// validatePaidOrderInput checks the parts of a paid submission that need no
// stored state. The screenshot upload must already have succeeded; without
// its URL no order row may be created.
func validatePaidOrderInput(req CreateOrderRequest) map[string]string {
	errs := make(map[string]string)
	validateWhatsapp(req.WhatsappNumber, errs)
	validateAccountURL(req.AccountURL, errs)
	if len(req.Cart) == 0 {
		errs["cart"] = "Please select a package"
	}
	if req.PaymentScreenshot == "" {
		errs["payment_screenshot"] = "Payment screenshot is required"
	}
	return errs
}

// validateCartPackages checks every cart line against the fetched packages.
// Unknown ids, including packages that belong to another service, are
// reported together in one message.
func validateCartPackages(cart []CartItem, byID map[string]models.ServicePackage, serviceID string, errs map[string]string) {
	var unknown []string
	for _, item := range cart {
		pkg, ok := byID[item.PackageID]
		if !ok || pkg.ServiceID != serviceID {
			unknown = append(unknown, item.PackageID)
			continue
		}
		validateQuantity(pkg.Units, errs)
	}
	if len(unknown) > 0 {
		errs["cart"] = "Unknown packages: " + strings.Join(unknown, ", ")
	}
}

// NormalizePaymentMethod maps raw client method codes to display labels.
// Unknown codes pass through unchanged.
func NormalizePaymentMethod(pm string) string {
	switch pm {
	case "stcpay":
		return models.MethodSTCPay
	case "alrajhi":
		return models.MethodAlRajhi
	case "vodafone":
		return models.MethodVodafoneCash
	case "free":
		return models.MethodFree
	default:
		return pm
	}
}

// methodEnabled reports whether a normalized method label matches one of the
// enabled methods, ignoring case and spacing so raw codes like "instapay"
// still match their label.
func methodEnabled(method string, enabled []string) bool {
	canon := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	for _, m := range enabled {
		if canon(m) == canon(method) {
			return true
		}
	}
	return false
}

// PriceForPackage resolves a line item's price: the package's explicit
// per-currency price when present, otherwise pro-rated from the service's
// per-1000 price.
func PriceForPackage(pkg models.ServicePackage, svc models.Service, currency string) float64 {
	if p, ok := pkg.Price[currency]; ok {
		return p
	}
	return float64(pkg.Units) / 1000 * svc.Prices[currency]
}
