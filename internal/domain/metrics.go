package domain

import (
	"math"
	"time"
)

// MetricsHistoryLimit caps how many readings are kept per patient, newest
// first.
const MetricsHistoryLimit = 10

// MetricsReading is one health-metrics entry submitted by a patient.
type MetricsReading struct {
	WeightKg     float64   `bson:"weight_kg" json:"weight_kg"`
	HeightCm     float64   `bson:"height_cm" json:"height_cm"`
	TemperatureC float64   `bson:"temperature_c" json:"temperature_c"`
	BloodSugar   float64   `bson:"blood_sugar" json:"blood_sugar"`
	OxygenLevel  float64   `bson:"oxygen_level" json:"oxygen_level"`
	BMI          float64   `bson:"bmi" json:"bmi"`
	Notes        string    `bson:"notes" json:"notes"`
	RecordedAt   time.Time `bson:"recorded_at" json:"recorded_at"`
}

// HealthMetrics is the per-user metrics document, readings newest first.
type HealthMetrics struct {
	UserID   string           `bson:"user_id" json:"user_id"`
	Readings []MetricsReading `bson:"readings" json:"readings"`
}

// ComputeBMI returns weight / height² rounded to one decimal, or 0 when
// either input is missing.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}
