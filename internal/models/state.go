package models

// State is the current step of a user's booking flow.
type State int

const (
	StateStart State = iota
	StateAwaitingYesNo
	StateAwaitingNewPhone
	StateAwaitingNewNickname
	StateIdle
	StateAwaitingZone
	StateAwaitingMachineCount
	StateAwaitingMachineSelection
	StateAwaitingDate
	StateAwaitingTime
	StateAwaitingConfirmation
	StateCancelling
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateAwaitingYesNo:
		return "awaiting_yes_no"
	case StateAwaitingNewPhone:
		return "awaiting_new_phone"
	case StateAwaitingNewNickname:
		return "awaiting_new_nickname"
	case StateIdle:
		return "idle"
	case StateAwaitingZone:
		return "awaiting_zone"
	case StateAwaitingMachineCount:
		return "awaiting_machine_count"
	case StateAwaitingMachineSelection:
		return "awaiting_machine_selection"
	case StateAwaitingDate:
		return "awaiting_date"
	case StateAwaitingTime:
		return "awaiting_time"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateCancelling:
		return "cancelling"
	}
	return "unknown"
}
