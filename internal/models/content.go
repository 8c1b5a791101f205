package models

import "time"

// HeroImage is a carousel slide on the public landing page.
type HeroImage struct {
	ID           string    `db:"id" json:"id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	AltText      string    `db:"alt_text" json:"alt_text"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// TeamMember is a staff profile shown on the about page. The Nepali
// variants are optional display strings, not a localization layer.
type TeamMember struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	NameNepali     string    `db:"name_nepali" json:"name_nepali"`
	Position       string    `db:"position" json:"position"`
	PositionNepali string    `db:"position_nepali" json:"position_nepali"`
	ImageURL       string    `db:"image_url" json:"image_url"`
	DisplayOrder   int       `db:"display_order" json:"display_order"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// GalleryImage is a photo in the public gallery grid.
type GalleryImage struct {
	ID            string    `db:"id" json:"id"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	Caption       string    `db:"caption" json:"caption"`
	CaptionNepali string    `db:"caption_nepali" json:"caption_nepali"`
	Category      string    `db:"category" json:"category"`
	DisplayOrder  int       `db:"display_order" json:"display_order"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Notice is an announcement published on the notice board. Date is the
// notice's calendar date, stored as an ISO date string.
type Notice struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Date         string    `db:"date" json:"date"`
	Content      string    `db:"content" json:"content"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
