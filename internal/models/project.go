package models

// ProjectCategories is the fixed category vocabulary for projects.
// "All" is a client-side passthrough, not a stored value.
var ProjectCategories = []string{
	"Residential", "Commercial", "Interior", "Sustainable", "Public", "Hospitality",
}

// ProjectModel stores a built work shown in the portfolio.
type ProjectModel struct {
	Base
	Title        string        `json:"title"        gorm:"not null"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Category     string        `json:"category"     gorm:"index;not null"`
	Location     string        `json:"location"     gorm:"not null"`
	Year         string        `json:"year"         gorm:"not null"`
	Area         string        `json:"area,omitempty"`
	Architect    string        `json:"architect,omitempty"`
	Photographer string        `json:"photographer,omitempty"`
	Client       string        `json:"client,omitempty"`
	Status       string        `json:"status,omitempty"`
	HeroImage    string        `json:"hero_image"   gorm:"not null"`
	Description  string        `json:"description"  gorm:"type:text;not null"`
	Images       StringArray   `json:"images"       gorm:"type:longtext"`
	Content      ContentBlocks `json:"content"      gorm:"type:longtext"`
}

func (ProjectModel) TableName() string { return "projects" }
