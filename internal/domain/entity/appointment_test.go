package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_CustomerMayOnlyCancelPending(t *testing.T) {
	statuses := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to, RoleCustomer)
			want := from == StatusPending && to == StatusCancelled
			assert.Equal(t, want, got, "customer transition %s -> %s", from, to)
		}
	}
}

func TestCanTransition_AdminMaySetAnyStatus(t *testing.T) {
	statuses := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, CanTransition(from, to, RoleAdmin), "admin transition %s -> %s", from, to)
		}
	}
}

func TestCanTransition_RejectsUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("unknown", StatusCancelled, RoleAdmin))
	assert.False(t, CanTransition(StatusPending, "unknown", RoleAdmin))
}

func TestAppointmentStatus_IsTerminalPartition(t *testing.T) {
	// Every status falls in exactly one of the upcoming/past buckets.
	terminal := map[AppointmentStatus]bool{
		StatusPending:    false,
		StatusConfirmed:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
	}

	for status, want := range terminal {
		assert.Equal(t, want, status.IsTerminal(), "status %s", status)
	}
}

func TestAppointment_FinalPrice(t *testing.T) {
	price := 500.0
	discount := 50.0

	tests := []struct {
		name string
		apt  Appointment
		want float64
	}{
		{name: "no price", apt: Appointment{}, want: 0},
		{name: "price only", apt: Appointment{TotalPrice: &price}, want: 500},
		{name: "price with discount", apt: Appointment{TotalPrice: &price, DiscountApplied: &discount}, want: 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.apt.FinalPrice())
		})
	}
}

func TestAppointment_FinalPrice_DiscountLargerThanTotalClampsToZero(t *testing.T) {
	price := 100.0
	discount := 150.0
	apt := Appointment{TotalPrice: &price, DiscountApplied: &discount}

	assert.Equal(t, 0.0, apt.FinalPrice())
}

func TestIsBookableSlot(t *testing.T) {
	assert.True(t, IsBookableSlot("09:00"))
	assert.True(t, IsBookableSlot("16:30"))
	// Lunch break is not bookable.
	assert.False(t, IsBookableSlot("12:00"))
	assert.False(t, IsBookableSlot("20:00"))
}
