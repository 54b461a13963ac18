package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockLabelPattern "9 AM", "9:30 am", "12 PM"
var clockLabelPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

// ClockLabel время в 12-часовом формате с AM/PM, как его показывает витрина ("9:30 AM")
type ClockLabel string

// Minutes переводит метку в минуты от полуночи
// "12 AM" -> 0, "12 PM" -> 720, "9:30 PM" -> 1290
func (c ClockLabel) Minutes() (int, error) {
	normalized := strings.ToUpper(strings.TrimSpace(string(c)))
	match := clockLabelPattern.FindStringSubmatch(normalized)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockLabel, string(c))
	}

	hours, _ := strconv.Atoi(match[1])
	if hours < 1 || hours > 12 {
		return 0, fmt.Errorf("%w: hour %d out of range", ErrInvalidClockLabel, hours)
	}

	minutes := 0
	if match[2] != "" {
		minutes, _ = strconv.Atoi(match[2])
		if minutes > 59 {
			return 0, fmt.Errorf("%w: minute %d out of range", ErrInvalidClockLabel, minutes)
		}
	}

	// 12 AM - это полночь, 12 PM - полдень
	if hours == 12 {
		hours = 0
	}
	if match[3] == "PM" {
		hours += 12
	}

	return hours*60 + minutes, nil
}

// SlotLabel метка временного окна доставки вида "<start> - <end>", например "11 AM - 1 PM"
type SlotLabel string

// Bounds разбивает метку на начало и конец окна
func (s SlotLabel) Bounds() (ClockLabel, ClockLabel, error) {
	parts := strings.SplitN(string(s), "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(s))
	}

	start := ClockLabel(strings.TrimSpace(parts[0]))
	end := ClockLabel(strings.TrimSpace(parts[1]))
	if start == "" || end == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(s))
	}

	return start, end, nil
}

// StartMinutes возвращает начало окна в минутах от полуночи
// Метка без разделителя трактуется целиком как время начала
func (s SlotLabel) StartMinutes() (int, error) {
	start, _, err := s.Bounds()
	if err != nil {
		return ClockLabel(strings.TrimSpace(string(s))).Minutes()
	}
	return start.Minutes()
}

// Validate проверяет, что обе границы окна корректны
// Окно может переходить через полночь ("11 PM - 1 AM"), поэтому порядок границ не проверяется
func (s SlotLabel) Validate() error {
	start, end, err := s.Bounds()
	if err != nil {
		return err
	}
	if _, err := start.Minutes(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidSlotLabel, err)
	}
	if _, err := end.Minutes(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidSlotLabel, err)
	}
	return nil
}

// String реализует fmt.Stringer
func (s SlotLabel) String() string {
	return string(s)
}
