package web

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/r3labs/sse/v2"

	"roombook/internal/booking"
	"roombook/internal/models"
	"roombook/internal/service"
	"roombook/internal/utils"
)

// Handler manages the room and booking admin pages
type Handler struct {
	rooms     RoomServicer
	bookings  BookingServicer
	templates *template.Template
	events    *sse.Server
}

// NewHandler creates a new web handler
func NewHandler(rooms RoomServicer, bookings BookingServicer, templatesDir string) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"now": time.Now,
	}).ParseGlob(filepath.Join(templatesDir, "*.html"))

	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		rooms:     rooms,
		bookings:  bookings,
		templates: tmpl,
		events:    newEventServer(),
	}, nil
}

// SetupRoutes registers the admin routes on the given mux
func (h *Handler) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleIndex)

	mux.HandleFunc("/rooms", h.handleRoomList)
	mux.HandleFunc("/rooms/new", h.handleRoomForm)
	mux.HandleFunc("/rooms/edit/", h.handleRoomForm)
	mux.HandleFunc("/rooms/save", h.handleRoomSave)
	mux.HandleFunc("/rooms/delete/", h.handleRoomDelete)

	mux.HandleFunc("/bookings", h.handleBookingList)
	mux.HandleFunc("/bookings/new", h.handleBookingForm)
	mux.HandleFunc("/bookings/edit/", h.handleBookingForm)
	mux.HandleFunc("/bookings/save", h.handleBookingSave)
	mux.HandleFunc("/bookings/delete/", h.handleBookingDelete)

	mux.HandleFunc("/events", h.serveEvents)
	mux.HandleFunc("/health/live", h.handleHealth)
}

// handleIndex sends the root path to the rooms page
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/rooms", http.StatusSeeOther)
}

// handleRoomList renders the room table
func (h *Handler) handleRoomList(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.List(r.Context())
	if err != nil {
		log.Printf("Error listing rooms: %v", err)
		http.Error(w, "Failed to load rooms", http.StatusInternalServerError)
		return
	}

	viewModel := struct {
		Rooms       []models.Room
		LastUpdated string
	}{
		Rooms:       rooms,
		LastUpdated: time.Now().Format("2006-01-02 15:04:05"),
	}

	h.render(w, "rooms.html", viewModel)
}

// roomFormView is the view model for the room add/edit form
type roomFormView struct {
	Room    models.Room
	Editing bool
	Error   string
}

// handleRoomForm renders the room form, empty for /rooms/new and pre-filled
// for /rooms/edit/{key}
func (h *Handler) handleRoomForm(w http.ResponseWriter, r *http.Request) {
	view := roomFormView{}

	if key, ok := pathSuffix(r.URL.Path, "/rooms/edit/"); ok {
		room, err := h.rooms.Get(r.Context(), key)
		if err != nil {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		view.Room = room
		view.Editing = true
	}

	h.render(w, "room_form.html", view)
}

// handleRoomSave creates or updates a room from submitted form values
func (h *Handler) handleRoomSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := r.FormValue("key")
	name := r.FormValue("name")
	capacity := r.FormValue("capacity")

	view := roomFormView{
		Room:    models.Room{Key: key, Name: name, Capacity: capacity},
		Editing: key != "",
	}

	if name == "" || capacity == "" {
		view.Error = "Name and capacity are required"
		h.render(w, "room_form.html", view)
		return
	}

	var err error
	if key == "" {
		_, err = h.rooms.Add(r.Context(), name, capacity)
	} else {
		_, err = h.rooms.Update(r.Context(), key, name, capacity)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		log.Printf("Error saving room %s: %v", utils.SanitizeLogString(name), err)
		http.Error(w, "Failed to save room", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/rooms", http.StatusSeeOther)
}

// handleRoomDelete deletes a room (POST only). The confirmation step happens
// in the list view before the form is submitted. Bookings referencing the
// room are deliberately left alone.
func (h *Handler) handleRoomDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key, ok := pathSuffix(r.URL.Path, "/rooms/delete/")
	if !ok {
		http.Error(w, "Room key required", http.StatusBadRequest)
		return
	}

	if err := h.rooms.Delete(r.Context(), key); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting room %s: %v", utils.SanitizeLogString(key), err)
		http.Error(w, "Failed to delete room", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/rooms", http.StatusSeeOther)
}

// bookingRow pairs a booking with the display name of its room. RoomName
// falls back to the raw stored key when the room no longer exists.
type bookingRow struct {
	Booking  models.Booking
	RoomName string
}

// handleBookingList renders the booking table
func (h *Handler) handleBookingList(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	rooms, err := h.rooms.List(r.Context())
	if err != nil {
		log.Printf("Error listing rooms for booking table: %v", err)
		rooms = nil
	}
	names := make(map[string]string, len(rooms))
	for _, room := range rooms {
		names[room.Key] = room.Name
	}

	rows := make([]bookingRow, 0, len(bookings))
	for _, b := range bookings {
		name, ok := names[b.MeetingType]
		if !ok {
			name = b.MeetingType
		}
		rows = append(rows, bookingRow{Booking: b, RoomName: name})
	}

	viewModel := struct {
		Bookings    []bookingRow
		LastUpdated string
	}{
		Bookings:    rows,
		LastUpdated: time.Now().Format("2006-01-02 15:04:05"),
	}

	h.render(w, "bookings.html", viewModel)
}

// bookingFormView is the view model for the booking add/edit form
type bookingFormView struct {
	Booking models.Booking
	Rooms   []models.Room
	Editing bool
	Error   string
}

// handleBookingForm renders the booking form. The room selector is loaded
// fresh from the room manager every time the form opens.
func (h *Handler) handleBookingForm(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.List(r.Context())
	if err != nil {
		log.Printf("Error listing rooms for booking form: %v", err)
		http.Error(w, "Failed to load rooms", http.StatusInternalServerError)
		return
	}

	view := bookingFormView{Rooms: rooms}

	if key, ok := pathSuffix(r.URL.Path, "/bookings/edit/"); ok {
		b, err := h.bookings.Get(r.Context(), key)
		if err != nil {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		view.Booking = b
		view.Editing = true
	}

	h.render(w, "booking_form.html", view)
}

// handleBookingSave validates and persists a booking submission. Validation
// failures re-render the form with a single dismissable message; nothing is
// written and nothing is logged durably.
func (h *Handler) handleBookingSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	editingKey := r.FormValue("key")
	date := r.FormValue("meetingDate")
	start := r.FormValue("meetingStartTime")
	end := r.FormValue("meetingEndTime")

	sub := booking.Submission{
		RoomKey:     r.FormValue("meetingType"),
		Title:       r.FormValue("meetingTitle"),
		Description: r.FormValue("meetingDescription"),
	}

	rerender := func(message string) {
		rooms, err := h.rooms.List(r.Context())
		if err != nil {
			rooms = nil
		}
		h.render(w, "booking_form.html", bookingFormView{
			Booking: models.Booking{
				Key:                editingKey,
				MeetingType:        sub.RoomKey,
				MeetingTitle:       sub.Title,
				MeetingDescription: sub.Description,
				MeetingDate:        date,
				MeetingStartTime:   start,
				MeetingEndTime:     end,
			},
			Rooms:   rooms,
			Editing: editingKey != "",
			Error:   message,
		})
	}

	// The form surface owns the required-field check; the validator never runs
	// on an incomplete submission
	if sub.RoomKey == "" || date == "" || start == "" || end == "" {
		rerender(booking.ErrRequiredFieldMissing.Error())
		return
	}

	sub.Date = booking.DateString{Value: date}
	sub.StartTime = booking.TimeString{Value: start}
	sub.EndTime = booking.TimeString{Value: end}

	if _, err := h.bookings.Submit(r.Context(), sub, editingKey); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		rerender(err.Error())
		return
	}

	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// handleBookingDelete deletes a booking (POST only)
func (h *Handler) handleBookingDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key, ok := pathSuffix(r.URL.Path, "/bookings/delete/")
	if !ok {
		http.Error(w, "Booking key required", http.StatusBadRequest)
		return
	}

	if err := h.bookings.Delete(r.Context(), key); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting booking %s: %v", utils.SanitizeLogString(key), err)
		http.Error(w, "Failed to delete booking", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// render executes a template, logging failures. Headers may already be
// written by the time execution fails, so no error response is attempted.
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
	}
}

// pathSuffix extracts the non-empty remainder of path after prefix
func pathSuffix(path, prefix string) (string, bool) {
	if len(path) <= len(prefix) {
		return "", false
	}
	return path[len(prefix):], true
}
