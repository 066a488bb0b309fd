package menu

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriesHandler returns the full menu: categories in display order with
// their items preloaded.
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var categories []Category

	err := db.DB.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("name") }).
		Order("sort_order, title").
		Find(&categories).Error
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, categories)
}

func ItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var item Item
	err = db.DB.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, item)
}

type categoryInput struct {
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
}

func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title == "" {
		utils.RespondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	category := Category{
		ID:        uuid.New(),
		Title:     input.Title,
		SortOrder: input.SortOrder,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Category title already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, category)
}

func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category Category
	err = db.DB.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title == "" {
		utils.RespondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	updates := map[string]interface{}{"title": input.Title, "sort_order": input.SortOrder}
	if err := db.DB.Model(&category).Updates(updates).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, category)
}

// DeleteCategoryHandler refuses to delete a category that still has items;
// items must be moved or deleted first.
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var count int64
	if err := db.DB.Model(&Item{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if count > 0 {
		utils.RespondError(w, http.StatusConflict, "Category still has items")
		return
	}

	result := db.DB.Where("id = ?", id).Delete(&Category{})
	if result.Error != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type itemInput struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int       `json:"price_cents"`
	Tags        []string  `json:"tags"`
	Available   *bool     `json:"available"`
	ImageURL    string    `json:"image_url"`
}

func (in itemInput) validate() string {
	switch {
	case in.Name == "":
		return "Name is required"
	case in.CategoryID == uuid.Nil:
		return "category_id is required"
	case in.PriceCents < 0:
		return "price_cents must not be negative"
	default:
		return ""
	}
}

func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var input itemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := input.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	var category Category
	if err := db.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	item := Item{
		ID:          uuid.New(),
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Tags:        input.Tags,
		Available:   available,
		ImageURL:    input.ImageURL,
	}
	if err := db.DB.Create(&item).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, item)
}

func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var item Item
	err = db.DB.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input itemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := input.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	if input.CategoryID != item.CategoryID {
		var category Category
		if err := db.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Unknown category")
			return
		}
	}

	available := item.Available
	if input.Available != nil {
		available = *input.Available
	}

	updates := Item{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Tags:        input.Tags,
		Available:   available,
		ImageURL:    input.ImageURL,
	}
	if err := db.DB.Model(&item).Select("category_id", "name", "description",
		"price_cents", "tags", "available", "image_url").Updates(updates).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, item)
}

func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	result := db.DB.Where("id = ?", id).Delete(&Item{})
	if result.Error != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
