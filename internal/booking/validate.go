package booking

import (
	"time"

	"roombook/internal/models"
)

// Duration bounds for a single booking
const (
	MinDuration = 30 * time.Minute
	MaxDuration = 240 * time.Minute
)

// Submission carries the raw field values collected by a booking form.
// RoomKey, Date, StartTime and EndTime are required; Title and Description
// are free text.
type Submission struct {
	RoomKey     string
	Title       string
	Description string
	Date        DateValue
	StartTime   TimeValue
	EndTime     TimeValue
}

// HasConflict reports whether the [start, end) window collides with any
// booking in existing for the same room on the same calendar date. Dates are
// compared as YYYY-MM-DD strings and windows with half-open semantics, so a
// booking ending exactly when another starts does not conflict. The booking
// whose key equals excludeKey is skipped, which keeps an edited booking from
// conflicting with itself. Stored records that no longer parse are ignored
// rather than treated as conflicts.
func HasConflict(roomKey, date string, start, end time.Time, existing []models.Booking, excludeKey string) bool {
	for _, b := range existing {
		if excludeKey != "" && b.Key == excludeKey {
			continue
		}
		if b.MeetingType != roomKey || b.MeetingDate != date {
			continue
		}

		bStart, err := CombineDateAndTime(DateString{Value: b.MeetingDate}, TimeString{Value: b.MeetingStartTime})
		if err != nil {
			continue
		}
		bEnd, err := CombineDateAndTime(DateString{Value: b.MeetingDate}, TimeString{Value: b.MeetingEndTime})
		if err != nil {
			continue
		}

		if start.Before(bEnd) && end.After(bStart) {
			return true
		}
	}
	return false
}

// ValidateSubmission checks a submission against the booking rules and, on
// success, returns the normalized payload: MeetingDate as YYYY-MM-DD and both
// times as HH:mm strings. The returned booking carries no key; assigning a
// fresh key or preserving the edited one is the caller's job. When editing,
// editingKey names the booking being replaced so it is excluded from conflict
// detection. The decision is pure: same inputs always produce the same result.
func ValidateSubmission(sub Submission, existing []models.Booking, editingKey string) (models.Booking, error) {
	if sub.RoomKey == "" || sub.Date == nil || sub.StartTime == nil || sub.EndTime == nil {
		return models.Booking{}, ErrRequiredFieldMissing
	}

	start, err := CombineDateAndTime(sub.Date, sub.StartTime)
	if err != nil {
		return models.Booking{}, err
	}
	end, err := CombineDateAndTime(sub.Date, sub.EndTime)
	if err != nil {
		return models.Booking{}, err
	}

	if !start.Before(end) {
		return models.Booking{}, ErrOrderingViolation
	}

	duration := end.Sub(start)
	if duration < MinDuration {
		return models.Booking{}, ErrDurationTooShort
	}
	if duration > MaxDuration {
		return models.Booking{}, ErrDurationTooLong
	}

	date := start.Format(models.DateLayout)
	if HasConflict(sub.RoomKey, date, start, end, existing, editingKey) {
		return models.Booking{}, ErrSchedulingConflict
	}

	return models.Booking{
		MeetingType:        sub.RoomKey,
		MeetingTitle:       sub.Title,
		MeetingDescription: sub.Description,
		MeetingDate:        date,
		MeetingStartTime:   start.Format(models.TimeLayout),
		MeetingEndTime:     end.Format(models.TimeLayout),
	}, nil
}
