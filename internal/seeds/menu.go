package seeds

import (
	"errors"
	"fmt"
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/menu"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type menuSeed struct {
	Categories []struct {
		Title     string `yaml:"title"`
		SortOrder int    `yaml:"sort_order"`
		Items     []struct {
			Name        string   `yaml:"name"`
			Description string   `yaml:"description"`
			PriceCents  int      `yaml:"price_cents"`
			Tags        []string `yaml:"tags"`
			ImageURL    string   `yaml:"image_url"`
		} `yaml:"items"`
	} `yaml:"categories"`
}

// SeedMenu loads the starter menu. Existing categories (matched by title)
// are skipped, so re-running the seeder is safe.
func SeedMenu() error {
	file, err := seedData.ReadFile("data/menu.yaml")
	if err != nil {
		return fmt.Errorf("could not read menu.yaml: %w", err)
	}

	var seed menuSeed
	if err := yaml.Unmarshal(file, &seed); err != nil {
		return fmt.Errorf("failed to parse menu.yaml: %w", err)
	}

	titler := cases.Title(language.English)
	created := 0

	for _, c := range seed.Categories {
		title := titler.String(c.Title)

		var existing menu.Category
		err := db.DB.First(&existing, "title = ?", title).Error
		if err == nil {
			log.Printf("Category exists, skipping: %s", title)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on category %s: %w", title, err)
		}

		category := menu.Category{
			ID:        uuid.New(),
			Title:     title,
			SortOrder: c.SortOrder,
		}
		for _, i := range c.Items {
			category.Items = append(category.Items, menu.Item{
				ID:          uuid.New(),
				CategoryID:  category.ID,
				Name:        i.Name,
				Description: i.Description,
				PriceCents:  i.PriceCents,
				Tags:        i.Tags,
				Available:   true,
				ImageURL:    i.ImageURL,
			})
		}

		if err := db.DB.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", title, err)
		}
		created++
	}

	log.Printf("Seeded %d menu categories", created)
	return nil
}
