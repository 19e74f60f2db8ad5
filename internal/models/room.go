package models

// StoreKeyRooms is the store key holding the serialized room list.
// The original tool wrote rooms under both "room" and "rooms"; the
// collections are unified under a single key here.
const StoreKeyRooms = "rooms"

// Room represents a bookable meeting room
type Room struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Capacity string `json:"capacity"`
}
