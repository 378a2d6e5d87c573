package model

import "time"

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	NameEN    string    `gorm:"not null" json:"name_en"`
	NameZH    string    `json:"name_zh"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Image     string    `json:"image"` // asset reference, "" when unset
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Name returns the display name for the given language.
func (c *Category) Name(lang string) string {
	if lang == LangZH && c.NameZH != "" {
		return c.NameZH
	}
	return c.NameEN
}
