package notification

import (
	"time"
)

// Category groups notifications by the module that produced them
type Category string

const (
	CategoryLeave      Category = "leave"
	CategoryAttendance Category = "attendance"
	CategoryPayroll    Category = "payroll"
	CategorySystem     Category = "system"
)

func IsValidCategory(c string) bool {
	switch Category(c) {
	case CategoryLeave, CategoryAttendance, CategoryPayroll, CategorySystem:
		return true
	}
	return false
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Category    Category
	Title       string
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
