package repository

import (
	"fmt"
	"time"

	"renobooking/internal/domain/schedule"
)

// scanDate adapts a Postgres date column to the domain's civil Date.
type scanDate struct {
	value schedule.Date
}

func (d *scanDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.value = schedule.DateOf(v)
		return nil
	case string:
		parsed, err := schedule.ParseDate(v)
		if err != nil {
			return err
		}
		d.value = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
}

// scanTimeOfDay adapts a stored "HH:MM" string to the domain value.
type scanTimeOfDay struct {
	value schedule.TimeOfDay
}

func (t *scanTimeOfDay) Scan(src any) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into time of day", src)
	}
	parsed, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	t.value = parsed
	return nil
}
