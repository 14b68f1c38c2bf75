package models

// DefaultPublicationAuthor is the studio principal, credited unless overridden.
const DefaultPublicationAuthor = "Hariom Jangid"

// PublicationModel stores a journal/press publication.
// Date is an ISO date string (YYYY-MM-DD) so lexicographic order is
// chronological order.
type PublicationModel struct {
	Base
	Title       string `json:"title"   gorm:"not null"`
	Journal     string `json:"journal" gorm:"not null"`
	Date        string `json:"date"    gorm:"index;not null"`
	Author      string `json:"author"  gorm:"not null"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Link        string `json:"link,omitempty"`
	Featured    bool   `json:"featured" gorm:"default:false"`
}

func (PublicationModel) TableName() string { return "publications" }
