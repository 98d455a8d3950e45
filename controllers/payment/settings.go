package paymentControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/cache"
	"github.com/Vairous86/bbbeeedddooo/models"
)

// PaymentSettings is the merged view of the four (method, currency)
// configuration slots the payment page and the settings form work with.
type PaymentSettings struct {
	STCPayNumber string `json:"stc_pay_number"`
	STCPayQR     string `json:"stc_pay_qr"`
	STCPayActive bool   `json:"stc_pay_active"`

	AlRajhiAccount string `json:"al_rajhi_account"`
	AlRajhiQR      string `json:"al_rajhi_qr"`
	AlRajhiActive  bool   `json:"al_rajhi_active"`

	VodafoneCash   string `json:"vodafone_cash"`
	VodafoneQR     string `json:"vodafone_qr"`
	VodafoneActive bool   `json:"vodafone_active"`

	InstaPayAccount string `json:"insta_pay_account"`
	InstaPayQR      string `json:"insta_pay_qr"`
	InstaPayActive  bool   `json:"insta_pay_active"`
}

// slot maps one of the configured (method, currency) pairs to its fields on
// the settings object.
func (s *PaymentSettings) slot(p models.MethodPair) (account, qr *string, active *bool) {
	switch p {
	case models.MethodPair{Method: models.MethodSTCPay, Currency: models.CurrencySAR}:
		return &s.STCPayNumber, &s.STCPayQR, &s.STCPayActive
	case models.MethodPair{Method: models.MethodAlRajhi, Currency: models.CurrencySAR}:
		return &s.AlRajhiAccount, &s.AlRajhiQR, &s.AlRajhiActive
	case models.MethodPair{Method: models.MethodVodafoneCash, Currency: models.CurrencyEGP}:
		return &s.VodafoneCash, &s.VodafoneQR, &s.VodafoneActive
	case models.MethodPair{Method: models.MethodInstaPay, Currency: models.CurrencyEGP}:
		return &s.InstaPayAccount, &s.InstaPayQR, &s.InstaPayActive
	}
	return nil, nil, nil
}

// Resolve merges whatever settings rows exist into one settings object.
// A missing (method, currency) row yields empty account details with the
// method enabled, so unconfigured methods still show up on the payment page.
func Resolve(rows []models.PaymentSetting) PaymentSettings {
	settings := PaymentSettings{
		STCPayActive:   true,
		AlRajhiActive:  true,
		VodafoneActive: true,
		InstaPayActive: true,
	}

	for _, pair := range models.ConfiguredPairs {
		for i := range rows {
			if rows[i].Method != pair.Method || rows[i].Currency != pair.Currency {
				continue
			}
			account, qr, active := settings.slot(pair)
			*account = rows[i].AccountNumber
			*qr = rows[i].QRUrl
			*active = rows[i].IsActive
			break
		}
	}

	return settings
}

// MethodsForCurrency returns the enabled payment methods offered for an
// order's currency. EGP orders pay through Egyptian wallets; everything else
// uses the Saudi methods.
func MethodsForCurrency(currency string, s PaymentSettings) []string {
	var methods []string
	if currency == models.CurrencyEGP {
		if s.VodafoneActive {
			methods = append(methods, models.MethodVodafoneCash)
		}
		if s.InstaPayActive {
			methods = append(methods, models.MethodInstaPay)
		}
		return methods
	}
	if s.STCPayActive {
		methods = append(methods, models.MethodSTCPay)
	}
	if s.AlRajhiActive {
		methods = append(methods, models.MethodAlRajhi)
	}
	return methods
}

// DefaultMethodFor picks the first enabled method for a currency. When the
// admin has disabled everything, the currency's primary method still applies
// so free orders always carry a method label.
func DefaultMethodFor(currency string, s PaymentSettings) string {
	if methods := MethodsForCurrency(currency, s); len(methods) > 0 {
		return methods[0]
	}
	if currency == models.CurrencyEGP {
		return models.MethodVodafoneCash
	}
	return models.MethodSTCPay
}

const settingsCacheKey = "payment_settings"
const settingsCacheTTL = time.Minute

// FetchSettings loads and resolves the settings object, consulting the cache
// first.
func FetchSettings(db *gorm.DB, c *cache.Redis) (PaymentSettings, error) {
	ctx := context.Background()

	var cached PaymentSettings
	if ok, err := c.GetJSON(ctx, settingsCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	var rows []models.PaymentSetting
	if err := db.Find(&rows).Error; err != nil {
		return PaymentSettings{}, err
	}
	settings := Resolve(rows)
	_ = c.SetJSON(ctx, settingsCacheKey, settings, settingsCacheTTL)
	return settings, nil
}

// upsertPair applies update-if-exists-else-insert semantics for one
// (method, currency) slot.
func upsertPair(db *gorm.DB, method, currency, accountNumber, qrURL string, isActive bool) error {
	var existing models.PaymentSetting
	err := db.Where("method = ? AND currency = ?", method, currency).First(&existing).Error
	if err == nil {
		return db.Model(&existing).Updates(map[string]interface{}{
			"account_number": accountNumber,
			"qr_url":         qrURL,
			"is_active":      isActive,
		}).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(&models.PaymentSetting{
		Method:        method,
		Currency:      currency,
		AccountNumber: accountNumber,
		QRUrl:         qrURL,
		IsActive:      isActive,
	}).Error
}

// GetSettingsHandler serves the resolved settings object.
func GetSettingsHandler(db *gorm.DB, c *cache.Redis) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		settings, err := FetchSettings(db, c)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, settings)
	}
}

// SaveSettingsHandler persists the settings form. Each of the four slots is
// upserted independently, so a later slot failing leaves the earlier ones
// saved — the form can simply be resubmitted.
func SaveSettingsHandler(db *gorm.DB, c *cache.Redis) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req PaymentSettings
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, pair := range models.ConfiguredPairs {
			account, qr, active := req.slot(pair)
			if err := upsertPair(db, pair.Method, pair.Currency, *account, *qr, *active); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment settings"})
				return
			}
		}

		_ = c.Delete(context.Background(), settingsCacheKey)
		ctx.JSON(http.StatusOK, gin.H{"message": "Payment settings saved"})
	}
}
