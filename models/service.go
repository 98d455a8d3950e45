package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PriceMap holds per-currency prices (e.g. {"SAR": 12, "EGP": 80}) and is
// persisted as a JSON column.
type PriceMap map[string]float64

func (p PriceMap) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (p *PriceMap) Scan(value interface{}) error {
	if value == nil {
		*p = PriceMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for PriceMap")
	}
}

// Service is a sellable unit of work against a platform, e.g. "Instagram
// Followers". Prices are per 1000 units unless packages override them.
type Service struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `gorm:"column:full_description" json:"full_description"`
	Prices          PriceMap  `gorm:"type:jsonb" json:"prices"`
	DeliveryTime    string    `gorm:"column:delivery_time" json:"delivery_time"`
	Guarantee       string    `json:"guarantee"`
	Image           string    `json:"image"`
	Platform        string    `json:"platform"`
	ServiceType     string    `gorm:"column:service_type" json:"service_type"`
	SubmissionType  string    `gorm:"column:submission_type;default:'url'" json:"submission_type"`
	RequiresPayment bool      `gorm:"column:requires_payment;default:true" json:"requires_payment"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServicePackage is a quantity/price tier of a service. Price may omit a
// currency, in which case (Units/1000)*Service.Prices[currency] applies.
type ServicePackage struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ServiceID   string    `gorm:"column:service_id;index" json:"service_id"`
	Units       int       `json:"units"`
	Price       PriceMap  `gorm:"type:jsonb" json:"price"`
	Visible     bool      `gorm:"default:true" json:"visible"`
	OrderIndex  *int      `gorm:"column:order_index" json:"order_index"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ServicePackage) TableName() string {
	return "service_packages"
}

// Platform is a social network the storefront sells services for.
type Platform struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MostRequested is the admin-curated set of services featured on the
// homepage. Keyed by service id so upserts are idempotent.
type MostRequested struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ServiceID string    `gorm:"column:service_id" json:"service_id"`
	Visible   bool      `json:"visible"`
	Position  *int      `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MostRequested) TableName() string {
	return "most_requested"
}
