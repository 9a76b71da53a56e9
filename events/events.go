// Package events defines the lifecycle event payloads published to the
// message broker. Downstream consumers (notification workers, analytics)
// get enough context to act without querying the primary database.
package events

const (
	TypeBookingCreated    = "booking.created"
	TypeBookingConfirmed  = "booking.confirmed"
	TypeBookingCheckedIn  = "booking.checked_in"
	TypeBookingCheckedOut = "booking.checked_out"
	TypeBookingCancelled  = "booking.cancelled"
	TypeInvoiceGenerated  = "invoice.generated"
)

type LifecycleEvent struct {
	Type          string `json:"type"`
	BookingID     uint   `json:"booking_id"`
	GuestID       uint   `json:"guest_id"`
	RoomID        uint   `json:"room_id"`
	RoomNumber    string `json:"room_number,omitempty"`
	BookingStatus string `json:"booking_status,omitempty"`
	RoomStatus    string `json:"room_status,omitempty"`
	Amount        string `json:"amount,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
