package storage

import (
	"testing"
	"time"

	"computer-club-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRegisterAndGetUser(t *testing.T) {
	db := openTestDB(t)

	u, err := db.GetUser(100)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, db.RegisterUser(100, "+79161234567", "neo"))

	u, err = db.GetUser(100)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "+79161234567", u.Phone)
	assert.Equal(t, "neo", u.Nickname)
	assert.NotZero(t, u.RegisteredAt)

	// registration is not re-enterable
	assert.Error(t, db.RegisterUser(100, "+79160000000", "smith"))
}

func TestInsertAndListBookings(t *testing.T) {
	db := openTestDB(t)

	multi := &models.Booking{
		UserID: 100, Zone: "izi", MachineCount: 2, Machines: "1,3",
		Date: "2026-03-07", Time: "14:00",
	}
	require.NoError(t, db.InsertBooking(multi))
	assert.NotZero(t, multi.ID)

	console := &models.Booking{
		UserID: 100, Zone: "ps5", Date: "2026-03-08", Time: "20:30",
	}
	require.NoError(t, db.InsertBooking(console))

	bookings, err := db.ListBookings(100)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "1,3", bookings[0].Machines)
	assert.Equal(t, 2, bookings[0].MachineCount)
	assert.Empty(t, bookings[1].Machines)
	assert.Zero(t, bookings[1].MachineCount)
}

func TestCheckAvailability(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "izi", MachineCount: 2, Machines: "1,3",
		Date: "2026-03-07", Time: "14:00",
	}))

	free, err := db.CheckAvailability([]int{3}, "2026-03-07", "14:00")
	require.NoError(t, err)
	assert.False(t, free, "machine 3 is taken at that slot")

	free, err = db.CheckAvailability([]int{2, 4}, "2026-03-07", "14:00")
	require.NoError(t, err)
	assert.True(t, free)

	free, err = db.CheckAvailability([]int{1, 3}, "2026-03-07", "14:30")
	require.NoError(t, err)
	assert.True(t, free, "other time is free")

	free, err = db.CheckAvailability([]int{1, 3}, "2026-03-08", "14:00")
	require.NoError(t, err)
	assert.True(t, free, "other date is free")

	free, err = db.CheckAvailability(nil, "2026-03-07", "14:00")
	require.NoError(t, err)
	assert.True(t, free, "empty set is vacuously available")
}

func TestDeleteBooking(t *testing.T) {
	db := openTestDB(t)
	b := &models.Booking{UserID: 100, Zone: "ps4", Date: "2026-03-07", Time: "10:00"}
	require.NoError(t, db.InsertBooking(b))
	require.NoError(t, db.DeleteBooking(100, b.ID))

	bookings, err := db.ListBookings(100)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeleteBookingScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	b := &models.Booking{UserID: 100, Zone: "ps4", Date: "2026-03-07", Time: "10:00"}
	require.NoError(t, db.InsertBooking(b))

	// someone else's id paired with our booking does nothing
	require.NoError(t, db.DeleteBooking(200, b.ID))

	bookings, err := db.ListBookings(100)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestDeleteAllBookingsScopedToUser(t *testing.T) {
	db := openTestDB(t)
	for _, userID := range []int64{100, 100, 200} {
		require.NoError(t, db.InsertBooking(&models.Booking{
			UserID: userID, Zone: "ps4", Date: "2026-03-07", Time: "10:00",
		}))
	}

	require.NoError(t, db.DeleteAllBookings(100))

	mine, err := db.ListBookings(100)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := db.ListBookings(200)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestListDueRemindersWindow(t *testing.T) {
	db := openTestDB(t)
	b := &models.Booking{UserID: 100, Zone: "ps4", Date: "2026-03-07", Time: "15:00"}
	require.NoError(t, db.InsertBooking(b))

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 7, hour, minute, 0, 0, time.UTC)
	}
	window := func(from time.Time) []models.Booking {
		due, err := db.ListDueReminders(from, from.Add(time.Hour))
		require.NoError(t, err)
		return due
	}

	assert.Empty(t, window(at(13, 59)), "more than an hour ahead")
	assert.Len(t, window(at(14, 0)), 1, "exactly an hour ahead")
	assert.Len(t, window(at(14, 37)), 1, "any later tick still sees it")
	assert.Empty(t, window(at(15, 0)), "booking already started")

	require.NoError(t, db.MarkReminded(b.ID))
	assert.Empty(t, window(at(14, 0)))
}

func TestListDueRemindersAcrossMidnight(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "ps4", Date: "2026-03-08", Time: "00:15",
	}))
	require.NoError(t, db.InsertBooking(&models.Booking{
		UserID: 100, Zone: "ps5", Date: "2026-03-07", Time: "23:45",
	}))

	from := time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC)
	due, err := db.ListDueReminders(from, from.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 2)
}
