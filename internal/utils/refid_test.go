package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGenerateReferenceID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		id := GenerateReferenceID(false, now)
		if !strings.HasPrefix(id, "WCR-2025-") {
			t.Fatalf("unexpected prefix: %s", id)
		}
		if !ValidReferenceID(id) {
			t.Fatalf("generated ID should validate: %s", id)
		}

		var year, suffix int
		if _, err := fmt.Sscanf(id, "WCR-%d-%d", &year, &suffix); err != nil {
			t.Fatalf("failed to parse %s: %v", id, err)
		}
		if suffix < 1000 || suffix > 9999 {
			t.Fatalf("suffix out of range: %d", suffix)
		}
	}
}

func TestGenerateInternshipReferenceID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id := GenerateReferenceID(true, now)
	if !strings.HasPrefix(id, "WCR-INT-2025-") {
		t.Fatalf("unexpected internship prefix: %s", id)
	}
	if !ValidReferenceID(id) {
		t.Fatalf("internship ID should validate: %s", id)
	}
}

func TestValidReferenceID(t *testing.T) {
	valid := []string{"WCR-2025-1234", "WCR-2024-9999", "WCR-INT-2025-1000"}
	for _, id := range valid {
		if !ValidReferenceID(id) {
			t.Errorf("%s should be valid", id)
		}
	}

	invalid := []string{
		"",
		"WCR-2025-123",
		"WCR-2025-12345",
		"WCR-25-1234",
		"wcr-2025-1234",
		"WCR-EXT-2025-1234",
		"WCR-2025-1234 ",
		"XCR-2025-1234",
	}
	for _, id := range invalid {
		if ValidReferenceID(id) {
			t.Errorf("%s should be invalid", id)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	d := CalendarDate(time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC))
	if d != "1/10/2025" {
		t.Errorf("CalendarDate = %q, want 1/10/2025", d)
	}
}
