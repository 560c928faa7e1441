package utils

import (
	"log"
	"time"
)

func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// ValidatePhone accepts "+7XXXXXXXXXX" or "8XXXXXXXXXX".
func ValidatePhone(phone string) bool {
	if len(phone) == 12 && phone[:2] == "+7" {
		return digits(phone[2:])
	}
	if len(phone) == 11 && phone[0] == '8' {
		return digits(phone[1:])
	}
	return false
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToISODate converts "DD.MM.YYYY" to "YYYY-MM-DD" for storage.
func ToISODate(date string) (string, error) {
	t, err := time.Parse("02.01.2006", date)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
