package model

import "time"

// Feedback is a customer review attached to a product. Reviews are entered
// by content editors and are never edited or deleted afterwards.
type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Rating    float64   `gorm:"default:5" json:"rating"`
	TextEN    string    `gorm:"type:text" json:"text_en"`
	TextZH    string    `gorm:"type:text" json:"text_zh"`
	Image     string    `json:"image"` // asset reference, "" when unset
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
