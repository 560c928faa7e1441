package models

// User is the persisted registration record for a telegram user.
// Created once at registration, read-only afterwards.
type User struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"` // telegram user id, unique
	Phone        string `db:"phone"`
	Nickname     string `db:"nickname"`
	RegisteredAt int64  `db:"registration_date"`
}

// Booking is a persisted reservation. MachineCount and the comma-joined
// machine list are empty for console zones (ps4/ps5).
type Booking struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"`
	Zone         string `db:"zone"`
	MachineCount int    `db:"computer_count"`
	Machines     string `db:"computers"`    // "1,3", "" for consoles
	Date         string `db:"booking_date"` // YYYY-MM-DD
	Time         string `db:"booking_time"` // HH:MM
	Reminded     bool   `db:"reminded"`
}
