package models

// DesignBoardModel stores a concept/mood-board entry.
type DesignBoardModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Category    string `json:"category"    gorm:"index;not null"`
	Image       string `json:"image"       gorm:"not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
}

func (DesignBoardModel) TableName() string { return "design_board" }
