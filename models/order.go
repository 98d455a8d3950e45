package models

import "time"

type OrderStatus string

const (
	// Order statuses. Every order starts as pending; all later changes are
	// admin-initiated from the dashboard.
	OrderStatusPending   OrderStatus = "pending"   // Submitted, awaiting payment review
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment verified by admin
	OrderStatusCompleted OrderStatus = "completed" // Service delivered
	OrderStatusCancelled OrderStatus = "cancelled" // Rejected or withdrawn
)

// Order is one purchased package (or one free/text submission). A multi-item
// cart produces one row per line item, all sharing the same payment
// screenshot and method.
type Order struct {
	ID                string      `gorm:"primaryKey" json:"id"`
	ServiceID         string      `gorm:"column:service_id" json:"service_id"`
	ServiceName       string      `gorm:"column:service_name" json:"service_name"`
	Platform          string      `json:"platform"`
	AccountURL        string      `gorm:"column:account_url" json:"account_url"`
	Quantity          int         `json:"quantity"`
	WhatsappNumber    string      `gorm:"column:whatsapp_number" json:"whatsapp_number"`
	Price             float64     `json:"price"`
	Currency          string      `gorm:"type:VARCHAR(8)" json:"currency"`
	PaymentMethod     string      `gorm:"column:payment_method" json:"payment_method"`
	PaymentScreenshot *string     `gorm:"column:payment_screenshot" json:"payment_screenshot"`
	Status            OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt         time.Time   `gorm:"column:created_at" json:"created_at"`
}

// TextSubmissionPrefix marks AccountURL values that carry free-form text
// instead of a target URL. Such orders always have zero quantity and price.
const TextSubmissionPrefix = "TEXT:"

// TransitionPolicy decides which admin status changes are accepted.
type TransitionPolicy interface {
	Allowed(from, to OrderStatus) bool
}

// PermissiveTransitions lets the admin move an order between any two
// statuses. The dashboard treats the admin as the final authority on
// payment review, so no ordering is enforced.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allowed(from, to OrderStatus) bool {
	return true
}
