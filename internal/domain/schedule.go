package domain

import "time"

// Schedule is the finite, ordered, duplicate-free sequence of occurrence
// dates a template generates up to min(endDate, horizon), both bounds
// inclusive. It is pure: building or iterating a Schedule performs no I/O
// and never reads the clock. The horizon must be supplied by the caller.
//
// Monthly and yearly steps are anchored to the start date's day-of-month and
// clamped to the last valid day of the target month, so a template starting
// Jan 31 yields Feb 28 (or 29), then Mar 31, Apr 30, and so on.
type Schedule struct {
	start    time.Time
	freq     Frequency
	interval int
	bound    time.Time
}

// NewSchedule validates the schedule shape and binds it to a horizon.
func NewSchedule(start time.Time, freq Frequency, interval int, end *time.Time, horizon time.Time) (*Schedule, error) {
	if !freq.Valid() {
		return nil, ErrUnknownFrequency
	}
	if interval < 1 {
		return nil, ErrInvalidInterval
	}
	start = DateOf(start)
	bound := DateOf(horizon)
	if end != nil {
		e := DateOf(*end)
		if e.Before(start) {
			return nil, ErrEndBeforeStart
		}
		bound = MinDate(bound, e)
	}
	return &Schedule{
		start:    start,
		freq:     freq,
		interval: interval,
		bound:    bound,
	}, nil
}

// Schedule binds the template's recurrence to a horizon.
func (t *Template) Schedule(horizon time.Time) (*Schedule, error) {
	return NewSchedule(t.StartDate, t.Frequency, t.Interval, t.EndDate, horizon)
}

// Bound is the inclusive upper limit of the sequence, min(endDate, horizon).
func (s *Schedule) Bound() time.Time {
	return s.bound
}

// dateAt computes the n-th occurrence date (n = 0 is the start date).
func (s *Schedule) dateAt(n int) time.Time {
	steps := n * s.interval
	switch s.freq {
	case FrequencyDaily:
		return s.start.AddDate(0, 0, steps)
	case FrequencyWeekly:
		return s.start.AddDate(0, 0, 7*steps)
	case FrequencyMonthly:
		return addMonths(s.start, steps)
	default: // yearly, guarded by NewSchedule
		return addMonths(s.start, 12*steps)
	}
}

// Iter returns a fresh iterator over the sequence. Iterators are independent,
// so a schedule can be walked any number of times.
func (s *Schedule) Iter() *ScheduleIter {
	return &ScheduleIter{s: s}
}

// ScheduleIter walks a Schedule lazily in ascending date order.
type ScheduleIter struct {
	s *Schedule
	n int
}

// Next returns the next occurrence date, or ok=false once the sequence is
// exhausted. The sequence is empty when the start date exceeds the bound.
func (it *ScheduleIter) Next() (time.Time, bool) {
	d := it.s.dateAt(it.n)
	if d.After(it.s.bound) {
		return time.Time{}, false
	}
	it.n++
	return d, true
}

// Dates collects the whole sequence eagerly. Intended for previews and tests;
// the materializer walks the iterator instead.
func (s *Schedule) Dates() []time.Time {
	var dates []time.Time
	for it := s.Iter(); ; {
		d, ok := it.Next()
		if !ok {
			return dates
		}
		dates = append(dates, d)
	}
}
