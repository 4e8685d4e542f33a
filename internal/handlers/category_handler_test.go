package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "github.com/Jitwisut/Backend-money-tracker/internal/errors"
	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

type mockCategoryService struct {
	listFn    func(userID uint) ([]models.Category, error)
	getByIDFn func(userID, categoryID uint) (*models.Category, error)
}

func (m *mockCategoryService) ListCategories(userID uint) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) FindOrCreate(_ *gorm.DB, userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	return &models.Category{UserID: userID, Name: name, Type: categoryType}, nil
}

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/transactions/category", injectUserID(1), handler.ListCategories)
	return r
}

func TestCategoryHandler_List(t *testing.T) {
	t.Run("returns categories", func(t *testing.T) {
		svc := &mockCategoryService{
			listFn: func(userID uint) ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: 1}, UserID: userID, Name: "Food", Type: models.CategoryTypeExpense},
					{Base: models.Base{ID: 2}, UserID: userID, Name: "Salary", Type: models.CategoryTypeIncome},
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/api/transactions/category", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["status"] != "success" {
			t.Errorf("expected status success, got %v", result["status"])
		}
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		if first["name"] != "Food" {
			t.Errorf("expected first category Food, got %v", first["name"])
		}
	})

	t.Run("returns 500 on service error", func(t *testing.T) {
		svc := &mockCategoryService{
			listFn: func(_ uint) ([]models.Category, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/api/transactions/category", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}
