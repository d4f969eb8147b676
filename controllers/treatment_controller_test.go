package controllers_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-backend/models"
)

func createCategory(t *testing.T, r *gin.Engine, token, nameEn string, withImage bool) models.ServiceCategory {
	t.Helper()
	fields := map[string]string{"name_en": nameEn, "name_ar": "تصنيف"}
	var files map[string][2]string
	if withImage {
		files = map[string][2]string{"image": {"cat.jpg", "jpegbytes-old"}}
	}
	w := doMultipart(t, r, http.MethodPost, "/api/categories", fields, files, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category models.ServiceCategory
	decodeBody(t, w, &category)
	require.NotZero(t, category.ID)
	return category
}

func TestCategoryTreatmentScenario(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	category := createCategory(t, r, token, "Massage", false)

	fields := map[string]string{
		"name_en":     "Swedish",
		"category_id": fmt.Sprintf("%d", category.ID),
		"prices":      `[{"duration":"60 min","price":120}]`,
	}
	w := doMultipart(t, r, http.MethodPost, "/api/treatments", fields, nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var treatment models.Treatment
	decodeBody(t, w, &treatment)
	require.NotZero(t, treatment.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/treatments?category_id=%d", category.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Treatment
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Swedish", listed[0].NameEn)
	require.Len(t, listed[0].Prices, 1)
	assert.Equal(t, "60 min", listed[0].Prices[0].Duration)
	assert.Equal(t, 120.0, listed[0].Prices[0].Price)
}

func TestCreateTreatmentUnknownCategory(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	fields := map[string]string{
		"name_en":     "Hot Stone",
		"category_id": "424242",
		"prices":      `[{"duration":"90 min","price":180}]`,
	}
	w := doMultipart(t, r, http.MethodPost, "/api/treatments", fields, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedPricesStoredAsEmptyList(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	category := createCategory(t, r, token, "Facials", false)

	fields := map[string]string{
		"name_en":     "Deep Cleanse",
		"category_id": fmt.Sprintf("%d", category.ID),
		"prices":      `{not json`,
	}
	w := doMultipart(t, r, http.MethodPost, "/api/treatments", fields, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var treatment models.Treatment
	decodeBody(t, w, &treatment)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/treatments/%d", treatment.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Treatment
	decodeBody(t, w, &got)
	assert.Empty(t, got.Prices)
}

// Deleting a category leaves its treatments in place; they stay retrievable
// by id and the category_id filter still returns them (the filter does not
// check that the category row still exists).
func TestCategoryDeleteLeavesTreatmentsOrphaned(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	category := createCategory(t, r, token, "Body Scrubs", false)

	fields := map[string]string{
		"name_en":     "Salt Glow",
		"category_id": fmt.Sprintf("%d", category.ID),
		"prices":      `[{"duration":"45 min","price":95}]`,
	}
	w := doMultipart(t, r, http.MethodPost, "/api/treatments", fields, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var treatment models.Treatment
	decodeBody(t, w, &treatment)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/treatments/%d", treatment.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/treatments?category_id=%d", category.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Treatment
	decodeBody(t, w, &listed)
	assert.Len(t, listed, 1)
}

func TestCategoryImageReplacement(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	category := createCategory(t, r, token, "Aromatherapy", true)
	require.NotEmpty(t, category.ImagePath)
	oldPath := filepath.Join("uploads", filepath.FromSlash(category.ImagePath))
	_, err := os.Stat(oldPath)
	require.NoError(t, err)

	files := map[string][2]string{"image": {"cat-new.jpg", "jpegbytes-new"}}
	w := doMultipart(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID),
		map[string]string{"name_en": "Aromatherapy"}, files, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.ServiceCategory
	decodeBody(t, w, &updated)
	require.NotEmpty(t, updated.ImagePath)
	assert.NotEqual(t, category.ImagePath, updated.ImagePath)

	// old file unlinked, new file present
	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join("uploads", filepath.FromSlash(updated.ImagePath)))
	assert.NoError(t, err)
}

func TestDeleteCategoryRemovesImage(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	category := createCategory(t, r, token, "Hammam", true)
	path := filepath.Join("uploads", filepath.FromSlash(category.ImagePath))
	_, err := os.Stat(path)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
