package repositories

import (
	"MediDesk/cache"
	"MediDesk/database"
	"MediDesk/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	DepartmentCacheExpiry = 24 * time.Hour
	departmentListKey     = "departments_cache:all"
)

type DepartmentRepository struct {
	cache *cache.Cache
}

func NewDepartmentRepository(cache *cache.Cache) *DepartmentRepository {
	return &DepartmentRepository{cache: cache}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, departmentListKey)
	if err == nil {
		var departments []models.Department
		if err := json.Unmarshal([]byte(cached), &departments); err == nil {
			return departments, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get departments from cache: %v", err)
	}

	var departments []models.Department
	if err := database.DB.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	if payload, err := json.Marshal(departments); err == nil {
		if err := r.cache.Set(ctx, departmentListKey, payload, DepartmentCacheExpiry); err != nil {
			log.Printf("Failed to set departments in cache: %v", err)
		}
	}
	return departments, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var department models.Department
	err := database.DB.WithContext(ctx).First(&department, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	if err := database.DB.WithContext(ctx).Create(department).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return r.cache.Delete(ctx, departmentListKey)
}

func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	if err := database.DB.WithContext(ctx).Save(department).Error; err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return r.cache.Delete(ctx, departmentListKey)
}

// Delete removes a department; dependent doctors and appointments go with
// it through the cascade constraints.
func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	result := database.DB.WithContext(ctx).Delete(&models.Department{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrDepartmentNotFound
	}
	if err := r.cache.Delete(ctx, departmentListKey); err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, "doctors_cache*")
}
