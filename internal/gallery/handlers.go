package gallery

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

func ListHandler(w http.ResponseWriter, r *http.Request) {
	var images []Image
	if err := db.DB.Order("sort_order, created_at").Find(&images).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondJSON(w, http.StatusOK, images)
}

type imageInput struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

func CreateImageHandler(w http.ResponseWriter, r *http.Request) {
	var input imageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.URL == "" || input.ObjectKey == "" {
		utils.RespondError(w, http.StatusBadRequest, "url and object_key are required")
		return
	}

	image := Image{
		ID:        uuid.New(),
		Title:     input.Title,
		Caption:   input.Caption,
		ObjectKey: input.ObjectKey,
		URL:       input.URL,
		SortOrder: input.SortOrder,
	}
	if err := db.DB.Create(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "Object key already registered")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, image)
}

func UpdateImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	var image Image
	err = db.DB.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input imageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{
		"title":      input.Title,
		"caption":    input.Caption,
		"sort_order": input.SortOrder,
	}
	if err := db.DB.Model(&image).Updates(updates).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, image)
}

func DeleteImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	result := db.DB.Where("id = ?", id).Delete(&Image{})
	if result.Error != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(w, http.StatusNotFound, "Image not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UploadHandler hands the back office a presigned PUT URL. The client
// uploads directly to object storage, then registers the image record.
type UploadHandler struct {
	Presigner Presigner
	PublicURL func(key string) string
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Presigner == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	var input struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Filename == "" {
		utils.RespondError(w, http.StatusBadRequest, "filename is required")
		return
	}

	key := objectKey(input.Filename)
	uploadURL, err := h.Presigner.PresignPut(r.Context(), key)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := map[string]string{
		"object_key": key,
		"upload_url": uploadURL,
	}
	if h.PublicURL != nil {
		resp["public_url"] = h.PublicURL(key)
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}
