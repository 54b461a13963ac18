package types

import "errors"

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfDay = errors.New("time is out of day bounds")

	// ErrInvalidClockLabel возвращается, когда строка не соответствует 12-часовому формату "h[:mm] AM|PM"
	ErrInvalidClockLabel = errors.New("invalid 12-hour clock label")

	// ErrInvalidSlotLabel возвращается, когда метка слота не имеет вида "<start> - <end>"
	ErrInvalidSlotLabel = errors.New("invalid slot label")
)
