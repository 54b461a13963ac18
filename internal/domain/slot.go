package domain

import "time"

// SlotAvailability represents a delivery window with its availability for a date
type SlotAvailability struct {
	Time      string
	Available bool
}

// DeliveryTypeAvailability represents a delivery type filtered for a date
type DeliveryTypeAvailability struct {
	DeliveryType *DeliveryType
	Available    bool
	Slots        []SlotAvailability
}

// AvailableSlotsCount returns the number of selectable windows
func (d *DeliveryTypeAvailability) AvailableSlotsCount() int {
	count := 0
	for _, s := range d.Slots {
		if s.Available {
			count++
		}
	}
	return count
}

// CalendarDay день календарной сетки выбора даты доставки
type CalendarDay struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Disabled bool
}
