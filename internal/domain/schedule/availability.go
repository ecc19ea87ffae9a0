package schedule

// DayAvailability is the resolved bookable state of one date.
type DayAvailability struct {
	Date      Date
	Status    DayStatus
	Available []TimeOfDay
	Booked    []TimeOfDay
}

// IsOpen reports whether the day accepts bookings at all. A full day is
// still "open" in this sense; only closures are not.
func (d DayAvailability) IsOpen() bool {
	return d.Status != StatusClosed
}

// ResolveDay computes the slots offered on a date from the weekly template,
// an optional single-day override and the already-booked times. Precedence:
// a closed override beats the template, bookings beat both. Past dates are
// never offered.
//
// The function is pure; callers load the three inputs however they like,
// which keeps it testable without storage.
func ResolveDay(today, date Date, tpl *WeeklyTemplate, override *DateOverride, booked []TimeOfDay) DayAvailability {
	if date.Before(today) {
		return DayAvailability{Date: date, Status: StatusClosed}
	}

	if override != nil && !override.IsOpen() {
		return DayAvailability{Date: date, Status: StatusClosed}
	}

	entry := tpl.EntryFor(date.Weekday())
	if !entry.IsActive() {
		return DayAvailability{Date: date, Status: StatusClosed}
	}

	bookedSet := make(map[int]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t.Minutes()] = struct{}{}
	}

	var available, taken []TimeOfDay
	for _, slot := range entry.Slots() {
		if override != nil && override.Blocks(slot) {
			continue
		}
		if _, isBooked := bookedSet[slot.Minutes()]; isBooked {
			taken = append(taken, slot)
			continue
		}
		available = append(available, slot)
	}

	status := StatusOpen
	if len(available) == 0 {
		status = StatusFull
	}

	return DayAvailability{
		Date:      date,
		Status:    status,
		Available: available,
		Booked:    taken,
	}
}

// Offers reports whether the given time is currently offered on the day.
func (d DayAvailability) Offers(t TimeOfDay) bool {
	for _, slot := range d.Available {
		if slot == t {
			return true
		}
	}
	return false
}
