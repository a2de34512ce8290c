package domain

import "time"

// Medicine is a pharmacy storefront product.
type Medicine struct {
	ID                   int64
	Name                 string
	Description          string
	Price                float64
	Category             string
	ImageURL             string
	Stock                int
	Brand                string
	RequiresPrescription bool
	DosageForm           string
	PackSize             string
	CreatedAt            time.Time
}

// Doctor is a directory entry; availability and booking flow through the
// appointments module, not through this record.
type Doctor struct {
	ID              int64
	Name            string
	Specialty       string
	Department      string
	ImageURL        string
	Experience      string
	Education       string
	Description     string
	Ratings         float64
	Reviews         int
	ConsultationFee float64
	CreatedAt       time.Time
}
