package models

const BookingCollection = "booking"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking es una reserva de un servicio de fotografía
type Booking struct {
	Name        string  `json:"name" bson:"name" binding:"required"`
	Email       string  `json:"email" bson:"email" binding:"required"`
	Phone       *string `json:"phone" bson:"phone"`
	ServiceID   *string `json:"service_id" bson:"service_id"`
	ServiceName *string `json:"service_name" bson:"service_name"`
	Date        *string `json:"date" bson:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" bson:"time" binding:"omitempty,datetime=15:04"`
	Location    *string `json:"location" bson:"location"`
	Message     *string `json:"message" bson:"message"`
	Status      string  `json:"status" bson:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

func (Booking) Collection() string { return BookingCollection }

func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
}
