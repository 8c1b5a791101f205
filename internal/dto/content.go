package dto

// CreateHeroImageRequest carries fields for a new hero slide.
type CreateHeroImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	AltText  string `json:"alt_text"`
}

// UpdateHeroImageRequest carries editable hero slide fields.
type UpdateHeroImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	AltText  string `json:"alt_text"`
	IsActive *bool  `json:"is_active"`
}

// CreateTeamMemberRequest carries fields for a new staff entry.
type CreateTeamMemberRequest struct {
	Name           string `json:"name" validate:"required"`
	NameNepali     string `json:"name_nepali"`
	Position       string `json:"position" validate:"required"`
	PositionNepali string `json:"position_nepali"`
	ImageURL       string `json:"image_url"`
}

// UpdateTeamMemberRequest carries editable staff fields.
type UpdateTeamMemberRequest struct {
	Name           string `json:"name" validate:"required"`
	NameNepali     string `json:"name_nepali"`
	Position       string `json:"position" validate:"required"`
	PositionNepali string `json:"position_nepali"`
	ImageURL       string `json:"image_url"`
	IsActive       *bool  `json:"is_active"`
}

// CreateGalleryImageRequest carries fields for a new gallery entry.
type CreateGalleryImageRequest struct {
	ImageURL      string `json:"image_url" validate:"required,url"`
	Caption       string `json:"caption"`
	CaptionNepali string `json:"caption_nepali"`
	Category      string `json:"category"`
}

// UpdateGalleryImageRequest carries editable gallery fields.
type UpdateGalleryImageRequest struct {
	ImageURL      string `json:"image_url" validate:"required,url"`
	Caption       string `json:"caption"`
	CaptionNepali string `json:"caption_nepali"`
	Category      string `json:"category"`
	IsActive      *bool  `json:"is_active"`
}

// CreateNoticeRequest carries fields for a new notice.
type CreateNoticeRequest struct {
	Title   string `json:"title" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Content string `json:"content"`
}

// UpdateNoticeRequest carries editable notice fields.
type UpdateNoticeRequest struct {
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Content  string `json:"content"`
	IsActive *bool  `json:"is_active"`
}

// ReorderRequest moves one item from one position to another within a
// tab's ordered collection.
type ReorderRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

// GalleryFilter captures query parameters for gallery listings.
type GalleryFilter struct {
	Category        string
	IncludeInactive bool
}
