package models

// InstagramPostModel stores a curated Instagram post shown on the home strip.
// Likes/comments are snapshots entered by the editor, not live counts.
type InstagramPostModel struct {
	Base
	Image    string `json:"image"     gorm:"not null"`
	Likes    int    `json:"likes"     gorm:"default:0"`
	Comments int    `json:"comments"  gorm:"default:0"`
	PostLink string `json:"post_link,omitempty"`
	PostDate string `json:"post_date" gorm:"not null"`
	Caption  string `json:"caption,omitempty" gorm:"type:text"`
}

func (InstagramPostModel) TableName() string { return "instagram_posts" }
