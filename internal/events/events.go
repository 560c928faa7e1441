// Package events turns raw callback payloads into typed events, so the
// handlers dispatch on a tag instead of re-splitting strings. A payload
// that does not parse is an error here, never a business-rule failure.
package events

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"computer-club-bot/internal/zones"
)

type Kind int

const (
	KindYes Kind = iota
	KindNo
	KindBook
	KindZone
	KindMachine
	KindDate
	KindTime
	KindConfirm
	KindCancelMenu
	KindCancelOne
	KindCancelAll
	KindRules
	KindBackToMenu
	KindBackToZone
	KindBackToCount
	KindBackToMachines
	KindBackToDate
)

// Event is one parsed button press. Only the fields for its Kind are set.
type Event struct {
	Kind      Kind
	Zone      string // KindZone
	Machine   int    // KindMachine
	Date      string // KindDate, KindTime: DD.MM.YYYY
	Time      string // KindTime: HH:MM
	BookingID int64  // KindCancelOne
}

var fixed = map[string]Kind{
	"yes":               KindYes,
	"no":                KindNo,
	"book":              KindBook,
	"confirm_booking":   KindConfirm,
	"cancel_booking":    KindCancelMenu,
	"cancel_all":        KindCancelAll,
	"rules":             KindRules,
	"back_to_menu":      KindBackToMenu,
	"back_to_zone":      KindBackToZone,
	"back_to_number":    KindBackToCount,
	"back_to_computers": KindBackToMachines,
	"back_to_date":      KindBackToDate,
}

// Parse decodes a callback payload. The grammar is "<action>" or
// "<action>:<arg...>": date:DD.MM.YYYY, time:DD.MM.YYYY:HH:MM,
// computer:<id>, cancel:<bookingId>, plus fixed actions and zone ids.
func Parse(data string) (Event, error) {
	if k, ok := fixed[data]; ok {
		return Event{Kind: k}, nil
	}
	if z := zones.ByID(data); z != nil {
		return Event{Kind: KindZone, Zone: data}, nil
	}

	action, rest, found := strings.Cut(data, ":")
	if !found {
		return Event{}, fmt.Errorf("unknown callback action %q", data)
	}

	switch action {
	case "computer":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Event{}, fmt.Errorf("bad machine number %q: %w", rest, err)
		}
		return Event{Kind: KindMachine, Machine: n}, nil

	case "date":
		if _, err := time.Parse("02.01.2006", rest); err != nil {
			return Event{}, fmt.Errorf("bad date %q: %w", rest, err)
		}
		return Event{Kind: KindDate, Date: rest}, nil

	case "time":
		// time:<DD.MM.YYYY>:<HH>:<MM>
		parts := strings.Split(rest, ":")
		if len(parts) != 3 {
			return Event{}, fmt.Errorf("bad time payload %q", data)
		}
		if _, err := time.Parse("02.01.2006", parts[0]); err != nil {
			return Event{}, fmt.Errorf("bad date %q: %w", parts[0], err)
		}
		hhmm := parts[1] + ":" + parts[2]
		if _, err := time.Parse("15:04", hhmm); err != nil {
			return Event{}, fmt.Errorf("bad time %q: %w", hhmm, err)
		}
		return Event{Kind: KindTime, Date: parts[0], Time: hhmm}, nil

	case "cancel":
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Event{}, fmt.Errorf("bad booking id %q: %w", rest, err)
		}
		return Event{Kind: KindCancelOne, BookingID: id}, nil
	}

	return Event{}, fmt.Errorf("unknown callback action %q", data)
}
