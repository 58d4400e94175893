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
	DoctorCacheExpiry = 24 * time.Hour
	doctorListKey     = "doctors_cache:all"
)

type DoctorRepository struct {
	cache *cache.Cache
}

func NewDoctorRepository(cache *cache.Cache) *DoctorRepository {
	return &DoctorRepository{cache: cache}
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, doctorListKey)
	if err == nil {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return doctors, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	var doctors []models.Doctor
	err = database.DB.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	if payload, err := json.Marshal(doctors); err == nil {
		if err := r.cache.Set(ctx, doctorListKey, payload, DoctorCacheExpiry); err != nil {
			log.Printf("Failed to set doctors in cache: %v", err)
		}
	}
	return doctors, nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := database.DB.WithContext(ctx).
		Preload("Department").
		First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	var department models.Department
	if err := database.DB.WithContext(ctx).First(&department, "id = ?", doctor.DepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to find department: %w", err)
	}

	if err := database.DB.WithContext(ctx).Create(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("a doctor with email %s already exists", doctor.Email)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return r.cache.Delete(ctx, doctorListKey)
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	if err := database.DB.WithContext(ctx).Save(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("a doctor with email %s already exists", doctor.Email)
		}
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return r.cache.Delete(ctx, doctorListKey)
}
