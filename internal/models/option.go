package models

// OptionModel is a key-value site setting (contact details, social handles,
// push notification credentials).
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:text"`
}

func (OptionModel) TableName() string { return "options" }
