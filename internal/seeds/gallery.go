package seeds

import (
	"errors"
	"fmt"
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/gallery"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gallerySeed struct {
	Images []struct {
		Title     string `yaml:"title"`
		Caption   string `yaml:"caption"`
		ObjectKey string `yaml:"object_key"`
		URL       string `yaml:"url"`
		SortOrder int    `yaml:"sort_order"`
	} `yaml:"images"`
}

// SeedGallery loads starter gallery records. Matched by object key, so
// re-running is safe.
func SeedGallery() error {
	file, err := seedData.ReadFile("data/gallery.yaml")
	if err != nil {
		return fmt.Errorf("could not read gallery.yaml: %w", err)
	}

	var seed gallerySeed
	if err := yaml.Unmarshal(file, &seed); err != nil {
		return fmt.Errorf("failed to parse gallery.yaml: %w", err)
	}

	created := 0
	for _, img := range seed.Images {
		var existing gallery.Image
		err := db.DB.First(&existing, "object_key = ?", img.ObjectKey).Error
		if err == nil {
			log.Printf("Image exists, skipping: %s", img.ObjectKey)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on image %s: %w", img.ObjectKey, err)
		}

		record := gallery.Image{
			ID:        uuid.New(),
			Title:     img.Title,
			Caption:   img.Caption,
			ObjectKey: img.ObjectKey,
			URL:       img.URL,
			SortOrder: img.SortOrder,
		}
		if err := db.DB.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create image %s: %w", img.ObjectKey, err)
		}
		created++
	}

	log.Printf("Seeded %d gallery images", created)
	return nil
}
