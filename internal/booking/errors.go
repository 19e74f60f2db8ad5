package booking

import "errors"

// Validation failures surfaced to the user. Each submission reports exactly
// one of these and aborts; none of them is fatal.
var (
	// ErrRequiredFieldMissing is returned when the room, date, start time or
	// end time is absent from the submission
	ErrRequiredFieldMissing = errors.New("room, date, start time and end time are required")

	// ErrInvalidTimeRange is returned when the date and time inputs cannot be
	// combined into a valid time window
	ErrInvalidTimeRange = errors.New("invalid date or time")

	// ErrOrderingViolation is returned when the start time is not strictly
	// before the end time
	ErrOrderingViolation = errors.New("start time must be before end time")

	// ErrDurationTooShort is returned when the booking is shorter than MinDuration
	ErrDurationTooShort = errors.New("booking must be at least 30 minutes")

	// ErrDurationTooLong is returned when the booking is longer than MaxDuration
	ErrDurationTooLong = errors.New("booking must not exceed 4 hours")

	// ErrSchedulingConflict is returned when the requested window overlaps an
	// existing booking for the same room and date
	ErrSchedulingConflict = errors.New("this room is already booked for the selected time")
)
