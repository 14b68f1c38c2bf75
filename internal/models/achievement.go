package models

// AchievementCategory partitions achievements into the three page sections.
type AchievementCategory string

const (
	AchievementAward         AchievementCategory = "award"
	AchievementCertification AchievementCategory = "certification"
	AchievementPublication   AchievementCategory = "publication"
)

// AchievementCategories lists every valid category value.
var AchievementCategories = []AchievementCategory{
	AchievementAward, AchievementCertification, AchievementPublication,
}

// AchievementIcons is the fixed icon vocabulary rendered by the page.
var AchievementIcons = []string{"Award", "Trophy", "Star", "Medal"}

// DefaultAchievementIcon is used when no icon is chosen.
const DefaultAchievementIcon = "Award"

// AchievementModel stores an award, certification or press mention.
type AchievementModel struct {
	Base
	Title          string              `json:"title"        gorm:"not null"`
	Organization   string              `json:"organization" gorm:"not null"`
	Year           string              `json:"year"         gorm:"index;not null"`
	Category       AchievementCategory `json:"category"     gorm:"index;not null"`
	Icon           string              `json:"icon,omitempty"`
	Description    string              `json:"description,omitempty" gorm:"type:text"`
	Image          string              `json:"image,omitempty"`
	CertificateURL string              `json:"certificate_url,omitempty"`
	Featured       bool                `json:"featured" gorm:"default:false"`
}

func (AchievementModel) TableName() string { return "achievements" }
