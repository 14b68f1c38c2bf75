package models

// DefaultTestimonialRating is applied when a testimonial is created without one.
const DefaultTestimonialRating = 5

// TestimonialModel stores a client testimonial.
type TestimonialModel struct {
	Base
	Name     string `json:"name"     gorm:"not null"`
	Role     string `json:"role"     gorm:"not null"`
	Company  string `json:"company"  gorm:"not null"`
	Image    string `json:"image,omitempty"`
	Rating   int    `json:"rating"   gorm:"default:5"`
	Text     string `json:"text"     gorm:"type:text;not null"`
	Featured bool   `json:"featured" gorm:"default:false"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
