package models

import "time"

// Payment method display labels as stored on orders and settings rows.
const (
	MethodSTCPay       = "STC Pay"
	MethodAlRajhi      = "Al Rajhi"
	MethodVodafoneCash = "Vodafone Cash"
	MethodInstaPay     = "InstaPay"
	MethodFree         = "Free"
)

const (
	CurrencySAR = "SAR"
	CurrencyEGP = "EGP"
	CurrencyUSD = "USD"
)

// PaymentSetting is one (method, currency) configuration row. Missing rows
// mean the method is enabled with empty account details.
type PaymentSetting struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method        string    `gorm:"uniqueIndex:idx_method_currency;not null" json:"method"`
	Currency      string    `gorm:"uniqueIndex:idx_method_currency;type:VARCHAR(8);not null" json:"currency"`
	AccountNumber string    `gorm:"column:account_number" json:"account_number"`
	QRUrl         string    `gorm:"column:qr_url" json:"qr_url"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PaymentSetting) TableName() string {
	return "payment_settings"
}

// MethodPair identifies one of the four configurable settings slots.
type MethodPair struct {
	Method   string
	Currency string
}

// ConfiguredPairs is the fixed set of slots the settings form edits and the
// payment page reads.
var ConfiguredPairs = []MethodPair{
	{Method: MethodSTCPay, Currency: CurrencySAR},
	{Method: MethodAlRajhi, Currency: CurrencySAR},
	{Method: MethodVodafoneCash, Currency: CurrencyEGP},
	{Method: MethodInstaPay, Currency: CurrencyEGP},
}
