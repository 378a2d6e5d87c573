package model

import (
	"strings"
	"time"
)

const (
	LangEN = "en"
	LangZH = "zh"
)

// galleryDelimiter separates the A+ gallery URLs stored in a single column.
const galleryDelimiter = ","

type Product struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CategoryID     uint      `gorm:"index;not null" json:"category_id"`
	TitleEN        string    `gorm:"not null" json:"title_en"`
	TitleZH        string    `json:"title_zh"`
	Price          float64   `gorm:"not null" json:"price"`
	MainImage      string    `json:"main_image"` // asset reference, "" when unset
	BulletPointsEN string    `gorm:"type:text" json:"bullet_points_en"`
	BulletPointsZH string    `gorm:"type:text" json:"bullet_points_zh"`
	DescriptionEN  string    `gorm:"type:text" json:"description_en"`
	DescriptionZH  string    `gorm:"type:text" json:"description_zh"`
	APlusImages    string    `gorm:"type:text" json:"a_plus_images"` // delimited asset reference list
	MonthlySales   int       `gorm:"default:0" json:"monthly_sales"`
	AvgRating      float64   `gorm:"default:5" json:"avg_rating"`
	IsNew          bool      `gorm:"default:false" json:"is_new"`
	IsDeal         bool      `gorm:"default:false" json:"is_deal"`
	IsFeatured     bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Category *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews  []Feedback `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// GalleryURLs splits the stored A+ image list. Empty column means no gallery.
func (p *Product) GalleryURLs() []string {
	if p.APlusImages == "" {
		return nil
	}
	return strings.Split(p.APlusImages, galleryDelimiter)
}

// SetGalleryURLs stores the full gallery list, replacing whatever was there.
func (p *Product) SetGalleryURLs(urls []string) {
	p.APlusImages = strings.Join(urls, galleryDelimiter)
}

// Bullets returns the bullet-point lines for the given language.
func (p *Product) Bullets(lang string) []string {
	text := p.BulletPointsEN
	if lang == LangZH {
		text = p.BulletPointsZH
	}
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
