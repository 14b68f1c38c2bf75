package models

// InquiryModel stores a message submitted through the contact form.
type InquiryModel struct {
	Base
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      gorm:"not null"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"    gorm:"type:text;not null"`
	Read      bool   `json:"read"       gorm:"default:false"`
}

func (InquiryModel) TableName() string { return "inquiries" }
