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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = time.Hour

	// Kept short: the lock only covers a single max+1 read and insert.
	tokenLockKey = "appointment_token_lock"
	tokenLockTTL = 10 * time.Second

	// Attempts against the token_number unique index before giving up.
	tokenConflictRetries = 3
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create persists a new appointment with the next sequential token number.
// Allocation is serialized behind a Redis lock and, independently of the
// lock, guarded by the unique index on token_number: on a duplicate-key
// conflict the max is re-read and the insert retried. Sequential bookings
// therefore produce 1000, 1001, ... with no gaps or repeats.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, tokenLockKey, lockValue, tokenLockTTL)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		if err != nil {
			return fmt.Errorf("failed to acquire booking lock: %w", err)
		}
		return errors.New("booking lock is held, timed out waiting to allocate a token")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, tokenLockKey, lockValue); err != nil {
			log.Printf("Failed to release booking lock: %v", err)
		}
	}()

	appointment.Status = models.StatusPending

	for attempt := 0; ; attempt++ {
		err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			token, err := nextToken(tx)
			if err != nil {
				return err
			}
			appointment.TokenNumber = token
			return tx.Create(appointment).Error
		})
		if err == nil {
			break
		}
		if retryTokenConflict(err, attempt) {
			appointment.ID = 0
			continue
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return r.cache.DeleteAll(ctx, "appointment_cache*")
}

// retryTokenConflict reports whether a failed insert lost a token race
// and should re-read the max. Any other failure is terminal.
func retryTokenConflict(err error, attempt int) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) && attempt < tokenConflictRetries
}

// nextToken reads the current maximum token number inside the caller's
// transaction. The first appointment ever gets the baseline value.
func nextToken(tx *gorm.DB) (int, error) {
	var max int
	err := tx.Model(&models.Appointment{}).
		Select("COALESCE(MAX(token_number), ?)", models.BaselineToken-1).
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max token number: %w", err)
	}
	return max + 1, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := database.DB.WithContext(ctx).
		Preload("Patient").
		Preload("Department").
		Preload("Doctor").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// GetByToken resolves the public token number to an appointment with its
// patient, department and doctor loaded.
func (r *AppointmentRepository) GetByToken(ctx context.Context, token int) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := tokenCacheKey(token)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err = database.DB.WithContext(ctx).
		Preload("Patient").
		Preload("Department").
		Preload("Doctor").
		First(&appointment, "token_number = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment by token: %w", err)
	}

	if payload, err := json.Marshal(appointment); err == nil {
		if err := r.cache.Set(ctx, cacheKey, payload, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointment in cache: %v", err)
		}
	}
	return &appointment, nil
}

// Cancel transitions an appointment to Cancelled. Cancelling one that is
// already Cancelled is a no-op reported through the second return value.
func (r *AppointmentRepository) Cancel(ctx context.Context, id uint) (*models.Appointment, bool, error) {
	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if appointment.Status.Terminal() {
		return appointment, true, nil
	}
	if !appointment.Status.CanTransition(models.StatusCancelled) {
		return nil, false, fmt.Errorf("cannot cancel appointment in status %s", appointment.Status)
	}

	err = database.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", models.StatusCancelled).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	appointment.Status = models.StatusCancelled

	if err := r.cache.DeleteAll(ctx, "appointment_cache*"); err != nil {
		return nil, false, err
	}
	return appointment, false, nil
}

// Update applies a staff edit. This is the only code path that may set
// Confirmed; it is an administrative mutation, not a lifecycle transition.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if !appointment.Status.Valid() {
		return fmt.Errorf("invalid appointment status %q", appointment.Status)
	}
	if err := database.DB.WithContext(ctx).Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointment_cache*")
}

func tokenCacheKey(token int) string {
	return fmt.Sprintf("appointment_cache:token:%d", token)
}
