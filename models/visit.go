package models

import "time"

// VisitLog is one row per page navigation. Rows are immutable; the admin
// dashboard only ever reads them.
type VisitLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IPAddress      string    `gorm:"column:ip_address" json:"ip_address"`
	Country        string    `json:"country"`
	City           string    `json:"city"`
	PageURL        string    `gorm:"column:page_url" json:"page_url"`
	UserAgent      string    `json:"user_agent"`
	ReferrerSource string    `json:"referrer_source"`
	CreatedAt      time.Time `json:"created_at"`
}

func (VisitLog) TableName() string {
	return "analytics_visits"
}
