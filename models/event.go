package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MetaMap is a free-form JSON payload attached to analytics events.
type MetaMap map[string]interface{}

func (m MetaMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *MetaMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for MetaMap")
	}
}

// AnalyticsEvent records funnel events (page_view, add_to_cart, purchase)
// alongside the visit log.
type AnalyticsEvent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"not null" json:"type"`
	ServiceID *string   `gorm:"column:service_id" json:"service_id"`
	Timestamp time.Time `json:"timestamp"`
	Meta      MetaMap   `gorm:"type:jsonb" json:"meta"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
