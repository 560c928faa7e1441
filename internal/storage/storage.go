package storage

import (
	"database/sql"
	"embed"
	"errors"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"computer-club-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- users -----------------------------------------------------------

// RegisterUser creates the registration record. Registration happens once;
// a second attempt for the same user id fails on the unique constraint.
func (d *DB) RegisterUser(userID int64, phone, nickname string) error {
	_, err := d.Exec(`
        INSERT INTO users (user_id, phone, nickname, registration_date)
        VALUES (?,?,?,?)
    `, userID, phone, nickname, time.Now().Unix())
	return err
}

func (d *DB) GetUser(userID int64) (*models.User, error) {
	var u models.User
	err := d.QueryRow(`
        SELECT id, user_id, phone, nickname, registration_date
        FROM users WHERE user_id=?`, userID,
	).Scan(&u.ID, &u.UserID, &u.Phone, &u.Nickname, &u.RegisteredAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ---------- bookings --------------------------------------------------------

// InsertBooking writes one confirmed reservation. Count and machine list
// stay NULL for console zones.
func (d *DB) InsertBooking(b *models.Booking) error {
	var count, machines any
	if b.Machines != "" {
		count = b.MachineCount
		machines = b.Machines
	}
	res, err := d.Exec(`
        INSERT INTO bookings (user_id, zone, computer_count, computers, booking_date, booking_time)
        VALUES (?,?,?,?,?,?)
    `, b.UserID, b.Zone, count, machines, b.Date, b.Time)
	if err != nil {
		return err
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

func (d *DB) ListBookings(userID int64) ([]models.Booking, error) {
	rows, err := d.Query(`
        SELECT id, user_id, zone, computer_count, computers, booking_date, booking_time, reminded
        FROM bookings WHERE user_id=? ORDER BY booking_date, booking_time, id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// DeleteBooking is scoped to the owner so a forged booking id cannot
// remove someone else's reservation.
func (d *DB) DeleteBooking(userID, id int64) error {
	_, err := d.Exec(`DELETE FROM bookings WHERE id=? AND user_id=?`, id, userID)
	return err
}

func (d *DB) DeleteAllBookings(userID int64) error {
	_, err := d.Exec(`DELETE FROM bookings WHERE user_id=?`, userID)
	return err
}

// ---------- availability ----------------------------------------------------

// CheckAvailability reports whether none of the machines is part of an
// existing booking at the given slot. An empty set is vacuously free.
// Not transactional with the insert that follows: two users confirming
// the same slot at once can both pass.
func (d *DB) CheckAvailability(machineIDs []int, isoDate, timeStr string) (bool, error) {
	if len(machineIDs) == 0 {
		return true, nil
	}

	rows, err := d.Query(`
        SELECT computers FROM bookings
        WHERE booking_date=? AND booking_time=? AND computers IS NOT NULL
    `, isoDate, timeStr)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	wanted := make(map[int]bool, len(machineIDs))
	for _, id := range machineIDs {
		wanted[id] = true
	}

	for rows.Next() {
		var machines string
		if err := rows.Scan(&machines); err != nil {
			return false, err
		}
		for _, part := range strings.Split(machines, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if wanted[n] {
				return false, nil
			}
		}
	}
	return true, rows.Err()
}

// ---------- reminders -------------------------------------------------------

// ListDueReminders returns unreminded bookings starting in (from, to].
// Dates and times are stored zero-padded, so string comparison orders
// them correctly. The window may cross midnight.
func (d *DB) ListDueReminders(from, to time.Time) ([]models.Booking, error) {
	const cols = `SELECT id, user_id, zone, computer_count, computers, booking_date, booking_time, reminded
        FROM bookings`
	fromDate, fromTime := from.Format("2006-01-02"), from.Format("15:04")
	toDate, toTime := to.Format("2006-01-02"), to.Format("15:04")

	var rows *sql.Rows
	var err error
	if fromDate == toDate {
		rows, err = d.Query(cols+`
        WHERE reminded=0 AND booking_date=? AND booking_time>? AND booking_time<=?
    `, fromDate, fromTime, toTime)
	} else {
		rows, err = d.Query(cols+`
        WHERE reminded=0 AND (
            (booking_date=? AND booking_time>?) OR (booking_date=? AND booking_time<=?)
        )
    `, fromDate, fromTime, toDate, toTime)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (d *DB) MarkReminded(id int64) error {
	_, err := d.Exec(`UPDATE bookings SET reminded=1 WHERE id=?`, id)
	return err
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var res []models.Booking
	for rows.Next() {
		var b models.Booking
		var count sql.NullInt64
		var machines sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &b.Zone, &count, &machines,
			&b.Date, &b.Time, &b.Reminded); err != nil {
			return nil, err
		}
		b.MachineCount = int(count.Int64)
		b.Machines = machines.String
		res = append(res, b)
	}
	return res, rows.Err()
}
