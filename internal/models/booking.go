package models

// StoreKeyBookings is the store key holding the serialized booking list.
const StoreKeyBookings = "bookings"

// Date and time layouts used for stored booking values
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Booking represents a scheduled use of a room for a date and time window.
// MeetingType holds the key of the booked room; the reference is soft, so a
// booking may outlive the room it points at. Dates are stored as YYYY-MM-DD
// and times as HH:mm strings once validated.
type Booking struct {
	Key                string `json:"key"`
	MeetingType        string `json:"meetingType"`
	MeetingTitle       string `json:"meetingTitle,omitempty"`
	MeetingDescription string `json:"meetingDescription,omitempty"`
	MeetingDate        string `json:"meetingDate"`
	MeetingStartTime   string `json:"meetingStartTime"`
	MeetingEndTime     string `json:"meetingEndTime"`
}
