package repositories

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalCount int64
		want       int
	}{
		{"zero page", 0, 25, 1},
		{"negative page", -3, 25, 1},
		{"first page", 1, 25, 1},
		{"middle page", 2, 25, 2},
		{"last page", 3, 25, 3},
		{"past the end", 9, 25, 3},
		{"empty listing", 5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPage(tt.page, tt.totalCount, InvoicePageSize); got != tt.want {
				t.Errorf("clampPage(%d, %d) = %d, want %d", tt.page, tt.totalCount, got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	if got := totalPages(0, InvoicePageSize); got != 1 {
		t.Errorf("totalPages(0) = %d, want 1", got)
	}
	if got := totalPages(10, InvoicePageSize); got != 1 {
		t.Errorf("totalPages(10) = %d, want 1", got)
	}
	if got := totalPages(11, InvoicePageSize); got != 2 {
		t.Errorf("totalPages(11) = %d, want 2", got)
	}
}
