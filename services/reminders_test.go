package services

import (
	"testing"
	"time"

	"partner-portal-api/models"
)

func TestDeliverableDueWithin(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)
	due := func(day int) *time.Time {
		d := time.Date(2025, 1, day, 9, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name       string
		dueDate    *time.Time
		daysBefore int
		want       bool
	}{
		{"no due date", nil, 7, false},
		{"due earlier today", due(10), 3, true},
		{"due at window edge", due(13), 3, true},
		{"due past window", due(14), 3, false},
		{"already overdue", due(9), 3, false},
		{"zero-day window matches today only", due(10), 0, true},
		{"zero-day window excludes tomorrow", due(11), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := models.Deliverable{DueDate: tt.dueDate}
			if got := DeliverableDueWithin(d, now, tt.daysBefore); got != tt.want {
				t.Fatalf("DeliverableDueWithin(due=%v, daysBefore=%d) = %v, want %v",
					tt.dueDate, tt.daysBefore, got, tt.want)
			}
		})
	}
}
