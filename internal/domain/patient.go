package domain

import "time"

// Patient is the profile document for an authenticated user.
type Patient struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	FullName         string    `bson:"full_name" json:"full_name"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	DateOfBirth      string    `bson:"date_of_birth" json:"date_of_birth"`
	Address          string    `bson:"address" json:"address"`
	EmergencyContact string    `bson:"emergency_contact" json:"emergency_contact"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}
