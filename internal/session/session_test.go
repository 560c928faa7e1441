package session

import (
	"testing"

	"computer-club-bot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetCreatesOnce(t *testing.T) {
	st := NewStore()
	a := st.Get(42)
	assert.Equal(t, models.StateStart, a.State)

	a.State = models.StateAwaitingZone
	b := st.Get(42)
	assert.Same(t, a, b)
	assert.Equal(t, models.StateAwaitingZone, b.State)
}

func TestAddMachineRejectsDuplicates(t *testing.T) {
	s := &Session{}
	assert.True(t, s.AddMachine(3))
	assert.True(t, s.AddMachine(1))
	assert.False(t, s.AddMachine(3))
	assert.Equal(t, []int{3, 1}, s.SelectedMachines)
}

func TestResetBookingKeepsRegistration(t *testing.T) {
	s := &Session{
		State:            models.StateAwaitingConfirmation,
		Zone:             "izi",
		MachineCount:     2,
		SelectedMachines: []int{1, 3},
		Date:             "01.02.2026",
		Time:             "14:00",
		Nickname:         "neo",
		Phone:            "+79161234567",
	}
	s.ResetBooking()
	assert.Empty(t, s.Zone)
	assert.Zero(t, s.MachineCount)
	assert.Nil(t, s.SelectedMachines)
	assert.Empty(t, s.Date)
	assert.Empty(t, s.Time)
	assert.Equal(t, "neo", s.Nickname)
	assert.Equal(t, "+79161234567", s.Phone)
}

func TestReset(t *testing.T) {
	st := NewStore()
	st.Get(7).Zone = "pro"
	st.Reset(7)
	assert.Empty(t, st.Get(7).Zone)
}
