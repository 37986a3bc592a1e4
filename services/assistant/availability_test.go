package assistant

import (
	"testing"

	"commuterhub/models"

	"github.com/stretchr/testify/assert"
)

func TestLockerFree(t *testing.T) {
	ledger := []models.Reservation{
		{ID: "1", LockerNumber: 105},
		{ID: "2", RackNumber: 3},
	}

	assert.False(t, LockerFree(ledger, 105))
	assert.True(t, LockerFree(ledger, 106))
	// Rack numbers do not occupy locker numbers.
	assert.True(t, LockerFree(ledger, 3))
	assert.True(t, LockerFree(nil, 100))
}

func TestRackFree(t *testing.T) {
	ledger := []models.Reservation{
		{ID: "1", RackNumber: 7},
	}

	assert.False(t, RackFree(ledger, 7))
	assert.True(t, RackFree(ledger, 8))
}

func TestSlotFree(t *testing.T) {
	ledger := []models.Reservation{
		{ID: "1", ResourceID: "2", Date: "2025-03-10", Time: "15:00", Duration: 1},
		{ID: "2", ResourceID: "2", Date: "2025-03-10", Time: "18:00", Duration: 2},
		{ID: "3", ResourceID: "3", Date: "2025-03-10", Time: "15:00", Duration: 1},
	}

	// Exact collision.
	assert.False(t, SlotFree(ledger, "2", "2025-03-10", "15:00", 1, ""))
	// Partial overlap from either side.
	assert.False(t, SlotFree(ledger, "2", "2025-03-10", "14:30", 1, ""))
	assert.False(t, SlotFree(ledger, "2", "2025-03-10", "15:30", 1, ""))
	assert.False(t, SlotFree(ledger, "2", "2025-03-10", "17:00", 4, ""))
	// Half-open: back-to-back slots do not conflict.
	assert.True(t, SlotFree(ledger, "2", "2025-03-10", "16:00", 2, ""))
	assert.True(t, SlotFree(ledger, "2", "2025-03-10", "14:00", 1, ""))
	// Different resource or date is free.
	assert.True(t, SlotFree(ledger, "4", "2025-03-10", "15:00", 1, ""))
	assert.True(t, SlotFree(ledger, "2", "2025-03-11", "15:00", 1, ""))
	// Excluding the conflicting reservation frees its slot (modify flow).
	assert.True(t, SlotFree(ledger, "2", "2025-03-10", "15:00", 1, "1"))
}

func TestSlotFreeIgnoresUntimedReservations(t *testing.T) {
	ledger := []models.Reservation{
		{ID: "1", ResourceID: "1", LockerNumber: 100},
		{ID: "2", ResourceID: "2", Date: "2025-03-10"}, // draft, no time yet
	}

	assert.True(t, SlotFree(ledger, "1", "2025-03-10", "09:00", 1, ""))
	assert.True(t, SlotFree(ledger, "2", "2025-03-10", "09:00", 1, ""))
}
