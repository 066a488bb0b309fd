package gallery

import (
	"time"

	"github.com/google/uuid"
)

type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ObjectKey string    `gorm:"uniqueIndex" json:"object_key"`
	URL       string    `json:"url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"-"`
}

func (Image) TableName() string { return "gallery.images" }
