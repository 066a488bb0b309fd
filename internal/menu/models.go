package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex" json:"title"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	Items     []Item    `gorm:"foreignKey:CategoryID" json:"items"`
}

type Item struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PriceCents  int            `json:"price_cents"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Available   bool           `gorm:"default:true" json:"available"`
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

func (Category) TableName() string { return "menu.categories" }
func (Item) TableName() string     { return "menu.items" }
