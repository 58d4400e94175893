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

// InvoicePageSize is the fixed page size of the invoice listing.
const InvoicePageSize = 10

const InvoiceCacheExpiry = 1 * time.Hour

func invoicePageKey(page int) string {
	return fmt.Sprintf("invoices_cache:page:%d", page)
}

type InvoiceRepository struct {
	cache *cache.Cache
}

func NewInvoiceRepository(cache *cache.Cache) *InvoiceRepository {
	return &InvoiceRepository{cache: cache}
}

// Create issues an invoice against an appointment. The derived total is
// recomputed by the model's BeforeSave hook in the same write as the inputs.
// At most one invoice may exist per appointment.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	var appointment models.Appointment
	if err := database.DB.WithContext(ctx).First(&appointment, "id = ?", invoice.AppointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to find appointment: %w", err)
	}

	if err := database.DB.WithContext(ctx).Create(invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("appointment %d already has an invoice", invoice.AppointmentID)
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return r.cache.DeleteAll(ctx, "invoices_cache*")
}

// Update edits the three input amounts of an existing invoice. The issue
// timestamp is set once at creation and never rewritten.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	var existing models.Invoice
	if err := database.DB.WithContext(ctx).First(&existing, "id = ?", invoice.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to find invoice: %w", err)
	}

	existing.ConsultationFee = invoice.ConsultationFee
	existing.MedicineCost = invoice.MedicineCost
	existing.OtherCharges = invoice.OtherCharges

	if err := database.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	*invoice = existing
	return r.cache.DeleteAll(ctx, "invoices_cache*")
}

// GetByAppointmentID returns the appointment's invoice, or nil when none
// has been issued.
func (r *InvoiceRepository) GetByAppointmentID(ctx context.Context, appointmentID uint) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var invoice models.Invoice
	err := database.DB.WithContext(ctx).First(&invoice, "appointment_id = ?", appointmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

// InvoicePage is one page of the newest-first invoice listing.
type InvoicePage struct {
	Invoices   []models.Invoice `json:"invoices"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	TotalCount int64            `json:"total_count"`
}

// List returns the requested page of invoices, newest first, with the
// appointment's patient and doctor loaded for display.
func (r *InvoiceRepository) List(ctx context.Context, page int) (*InvoicePage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var totalCount int64
	if err := database.DB.WithContext(ctx).Model(&models.Invoice{}).Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	page = clampPage(page, totalCount, InvoicePageSize)

	cached, err := r.cache.Get(ctx, invoicePageKey(page))
	if err == nil {
		var result InvoicePage
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get invoices from cache: %v", err)
	}

	var invoices []models.Invoice
	err = database.DB.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Patient").
		Preload("Appointment.Doctor").
		Order("date_issued DESC").
		Limit(InvoicePageSize).
		Offset((page - 1) * InvoicePageSize).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	result := &InvoicePage{
		Invoices:   invoices,
		Page:       page,
		TotalPages: totalPages(totalCount, InvoicePageSize),
		TotalCount: totalCount,
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := r.cache.Set(ctx, invoicePageKey(page), payload, InvoiceCacheExpiry); err != nil {
			log.Printf("Failed to set invoices in cache: %v", err)
		}
	}
	return result, nil
}

// clampPage normalizes an out-of-range page request to the nearest valid
// page, matching paginator get_page semantics.
func clampPage(page int, totalCount int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	if last := totalPages(totalCount, pageSize); page > last {
		return last
	}
	return page
}

func totalPages(totalCount int64, pageSize int) int {
	pages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}
