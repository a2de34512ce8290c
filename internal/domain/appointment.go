package domain

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID              string            `bson:"_id,omitempty" json:"id"`
	UserID          string            `bson:"user_id" json:"user_id"`
	UserEmail       string            `bson:"user_email" json:"user_email"`
	AppointmentType string            `bson:"appointment_type" json:"appointment_type"`
	Department      string            `bson:"department" json:"department"`
	Doctor          string            `bson:"doctor" json:"doctor"`
	PreferredDate   string            `bson:"preferred_date" json:"preferred_date"`
	PreferredTime   string            `bson:"preferred_time" json:"preferred_time"`
	Symptoms        string            `bson:"symptoms" json:"symptoms"`
	AdditionalNotes string            `bson:"additional_notes" json:"additional_notes"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}
