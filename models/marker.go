package models

import "time"

// ReservationMarker is the exclusivity token for a slot. Its existence means
// the slot is claimed; it is created exactly once, inside the reservation
// transaction, and never updated or deleted afterwards. Using the slot key as
// the document _id makes creation a native create-if-absent write.
type ReservationMarker struct {
	SlotKey   string    `bson:"_id" json:"slotKey"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
