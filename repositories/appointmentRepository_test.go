package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"MediDesk/cache"
	"MediDesk/database"
	"MediDesk/models"
)

func TestRetryTokenConflict(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{"duplicate token, first attempt", gorm.ErrDuplicatedKey, 0, true},
		{"duplicate token, last allowed attempt", gorm.ErrDuplicatedKey, tokenConflictRetries - 1, true},
		{"duplicate token, retries exhausted", gorm.ErrDuplicatedKey, tokenConflictRetries, false},
		{"wrapped duplicate token", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), 0, true},
		{"unrelated failure", errors.New("connection reset"), 0, false},
		{"record not found", gorm.ErrRecordNotFound, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryTokenConflict(tt.err, tt.attempt); got != tt.want {
				t.Errorf("retryTokenConflict(%v, %d) = %v, want %v", tt.err, tt.attempt, got, tt.want)
			}
		})
	}
}

// setupBackedRepositories connects to the Postgres and Redis instances named
// by TEST_DB_URL and TEST_REDIS_URL and resets the tables the tests touch.
// Without both variables the database-backed tests are skipped.
func setupBackedRepositories(t *testing.T) *cache.Cache {
	t.Helper()

	dsn := os.Getenv("TEST_DB_URL")
	redisURL := os.Getenv("TEST_REDIS_URL")
	if dsn == "" || redisURL == "" {
		t.Skip("TEST_DB_URL and TEST_REDIS_URL not set")
	}

	if _, err := database.InitDB(context.Background(), dsn); err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := database.InitializeRedis(redisURL); err != nil {
		t.Fatalf("failed to connect to test redis: %v", err)
	}
	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	for _, table := range []string{"prescription", "invoice", "appointment", "patient"} {
		if err := database.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s table: %v", table, err)
		}
	}
	if err := database.RedisClient.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush test redis: %v", err)
	}
	return c
}

// bookingFixture creates a department and doctor for appointments to
// reference.
func bookingFixture(t *testing.T) (uint, uint) {
	t.Helper()

	department := models.Department{Name: "Cardiology", Description: "Heart care"}
	if err := database.DB.Create(&department).Error; err != nil {
		t.Fatalf("failed to create department: %v", err)
	}
	doctor := models.Doctor{
		Name:           "Dr. Asha Rao",
		Specialization: "Cardiologist",
		DepartmentID:   department.ID,
		Email:          fmt.Sprintf("asha.rao+%d@medidesk.test", time.Now().UnixNano()),
		Experience:     12,
	}
	if err := database.DB.Create(&doctor).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}
	return department.ID, doctor.ID
}

func newTestAppointment(departmentID, doctorID uint) *models.Appointment {
	return &models.Appointment{
		DepartmentID: departmentID,
		DoctorID:     doctorID,
		Date:         time.Now().AddDate(0, 0, 1),
		Time:         "10:00",
	}
}

func TestCreateAssignsSequentialTokens(t *testing.T) {
	c := setupBackedRepositories(t)
	departmentID, doctorID := bookingFixture(t)
	repo := NewAppointmentRepository(c)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		appointment := newTestAppointment(departmentID, doctorID)
		if err := repo.Create(ctx, appointment); err != nil {
			t.Fatalf("failed to create appointment %d: %v", i, err)
		}
		want := models.BaselineToken + i
		if appointment.TokenNumber != want {
			t.Errorf("booking %d got token %d, want %d", i, appointment.TokenNumber, want)
		}
		if appointment.Status != models.StatusPending {
			t.Errorf("booking %d created with status %q, want %q", i, appointment.Status, models.StatusPending)
		}
	}
}

func TestConcurrentBookingsGetDistinctTokens(t *testing.T) {
	c := setupBackedRepositories(t)
	departmentID, doctorID := bookingFixture(t)
	repo := NewAppointmentRepository(c)

	const bookings = 5
	tokens := make(chan int, bookings)
	errs := make(chan error, bookings)

	var wg sync.WaitGroup
	for i := 0; i < bookings; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			appointment := newTestAppointment(departmentID, doctorID)
			if err := repo.Create(context.Background(), appointment); err != nil {
				errs <- err
				return
			}
			tokens <- appointment.TokenNumber
		}()
	}
	wg.Wait()
	close(tokens)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent booking failed: %v", err)
	}

	seen := make(map[int]bool)
	min, max := 0, 0
	for token := range tokens {
		if seen[token] {
			t.Fatalf("token %d assigned twice", token)
		}
		seen[token] = true
		if min == 0 || token < min {
			min = token
		}
		if token > max {
			max = token
		}
	}
	if len(seen) != bookings {
		t.Fatalf("got %d tokens, want %d", len(seen), bookings)
	}
	if min != models.BaselineToken || max != models.BaselineToken+bookings-1 {
		t.Errorf("tokens span [%d, %d], want [%d, %d]", min, max, models.BaselineToken, models.BaselineToken+bookings-1)
	}
}

func TestInvoiceListingRefreshesAfterCreate(t *testing.T) {
	c := setupBackedRepositories(t)
	departmentID, doctorID := bookingFixture(t)
	appointments := NewAppointmentRepository(c)
	invoices := NewInvoiceRepository(c)

	ctx := context.Background()
	first := newTestAppointment(departmentID, doctorID)
	second := newTestAppointment(departmentID, doctorID)
	for _, appointment := range []*models.Appointment{first, second} {
		if err := appointments.Create(ctx, appointment); err != nil {
			t.Fatalf("failed to create appointment: %v", err)
		}
	}

	if err := invoices.Create(ctx, &models.Invoice{
		AppointmentID:   first.ID,
		ConsultationFee: decimal.NewFromInt(500),
	}); err != nil {
		t.Fatalf("failed to create first invoice: %v", err)
	}

	page, err := invoices.List(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list invoices: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("got %d invoices before second issue, want 1", page.TotalCount)
	}

	// The second write must drop the cached page so the listing reflects it.
	if err := invoices.Create(ctx, &models.Invoice{
		AppointmentID: second.ID,
		MedicineCost:  decimal.NewFromInt(120),
	}); err != nil {
		t.Fatalf("failed to create second invoice: %v", err)
	}

	page, err = invoices.List(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list invoices after second issue: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("got %d invoices after second issue, want 2", page.TotalCount)
	}
}

func TestPatientListingRefreshesAfterCreate(t *testing.T) {
	c := setupBackedRepositories(t)
	repo := NewPatientRepository(c)

	ctx := context.Background()
	if _, err := repo.GetAll(ctx); err != nil {
		t.Fatalf("failed to warm patient listing: %v", err)
	}

	patient := &models.Patient{Name: "Ravi Kumar", Age: 41, Gender: models.GenderMale, Phone: "9876543210"}
	if err := repo.Create(ctx, patient); err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}

	patients, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to list patients: %v", err)
	}
	found := false
	for _, p := range patients {
		if p.ID == patient.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("new patient %d missing from listing of %d patients", patient.ID, len(patients))
	}
}
