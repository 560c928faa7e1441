package session

import (
	"sync"

	"computer-club-bot/internal/models"
)

// Session holds the booking data collected from one user so far.
type Session struct {
	State            models.State
	Zone             string
	MachineCount     int
	SelectedMachines []int  // insertion order, no duplicates
	Date             string // DD.MM.YYYY
	Time             string // HH:MM
	Nickname         string
	Phone            string
}

// AddMachine appends a machine to the selection. Returns false if it is
// already selected.
func (s *Session) AddMachine(n int) bool {
	for _, m := range s.SelectedMachines {
		if m == n {
			return false
		}
	}
	s.SelectedMachines = append(s.SelectedMachines, n)
	return true
}

// ResetBooking clears everything collected for the current booking
// attempt, keeping registration data.
func (s *Session) ResetBooking() {
	s.Zone = ""
	s.MachineCount = 0
	s.SelectedMachines = nil
	s.Date = ""
	s.Time = ""
}

// Store keeps one session per telegram user id. All access goes through
// the mutex so the scheduler goroutine and the update loop never race.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, creating an idle one on first contact.
func (st *Store) Get(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := st.sessions[userID]
	if s == nil {
		s = &Session{State: models.StateStart}
		st.sessions[userID] = s
	}
	return s
}

// Reset drops the user's session entirely.
func (st *Store) Reset(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
