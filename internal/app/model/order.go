package model

import "time"

// OrderDateFormat is the minute-precision timestamp stored with each
// inquiry, matching what the admin panel displays.
const OrderDateFormat = "2006-01-02 15:04"

// Order is an anonymous lead-capture inquiry. ProductName is free text,
// not a foreign key; the record is read-only once created.
type Order struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ProductName  string    `gorm:"not null" json:"product_name"`
	CustomerName string    `gorm:"not null" json:"customer_name"`
	ContactInfo  string    `gorm:"not null" json:"contact_info"`
	Note         string    `json:"note"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
