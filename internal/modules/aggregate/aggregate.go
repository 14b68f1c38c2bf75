package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

type contentCount struct {
	Projects        int64 `json:"projects"`
	DesignBoard     int64 `json:"design_board"`
	InstagramPosts  int64 `json:"instagram_posts"`
	Testimonials    int64 `json:"testimonials"`
	Achievements    int64 `json:"achievements"`
	Publications    int64 `json:"publications"`
	Inquiries       int64 `json:"inquiries"`
	UnreadInquiries int64 `json:"unread_inquiries"`
}

type aggregateData struct {
	Categories   []string                  `json:"categories"`
	Featured     featuredContent           `json:"featured"`
	Testimonials []models.TestimonialModel `json:"testimonials"`
	Count        contentCount              `json:"count"`
}

type featuredContent struct {
	Projects     []models.ProjectModel     `json:"projects"`
	Publications []models.PublicationModel `json:"publications"`
}

// RegisterRoutes mounts the combined read endpoints the home page uses, plus
// the gated admin snapshot.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, gateMW gin.HandlerFunc) {
	rg.GET("/aggregate", func(c *gin.Context) {
		data, err := buildAggregate(db)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, data)
	})

	rg.GET("/aggregate/stat", gateMW, func(c *gin.Context) {
		var stat contentCount
		countAll(db, &stat)
		response.OK(c, stat)
	})

	rg.GET("/admin/snapshot", gateMW, func(c *gin.Context) {
		snap := buildSnapshot(c.Request.Context(), db)
		response.OK(c, snap)
	})
}

func buildAggregate(db *gorm.DB) (*aggregateData, error) {
	var projects []models.ProjectModel
	if err := db.Order("created_at DESC, id DESC").Limit(6).Find(&projects).Error; err != nil {
		return nil, err
	}

	var publications []models.PublicationModel
	if err := db.Where("featured = ?", true).Order("date DESC, id DESC").Limit(3).Find(&publications).Error; err != nil {
		return nil, err
	}

	var testimonials []models.TestimonialModel
	if err := db.Where("featured = ?", true).Order("created_at DESC, id DESC").Limit(6).Find(&testimonials).Error; err != nil {
		return nil, err
	}

	categories := make([]string, len(models.ProjectCategories))
	copy(categories, models.ProjectCategories)

	var cnt contentCount
	countAll(db, &cnt)

	return &aggregateData{
		Categories: categories,
		Featured: featuredContent{
			Projects:     projects,
			Publications: publications,
		},
		Testimonials: testimonials,
		Count:        cnt,
	}, nil
}

func countAll(db *gorm.DB, cnt *contentCount) {
	db.Model(&models.ProjectModel{}).Count(&cnt.Projects)
	db.Model(&models.DesignBoardModel{}).Count(&cnt.DesignBoard)
	db.Model(&models.InstagramPostModel{}).Count(&cnt.InstagramPosts)
	db.Model(&models.TestimonialModel{}).Count(&cnt.Testimonials)
	db.Model(&models.AchievementModel{}).Count(&cnt.Achievements)
	db.Model(&models.PublicationModel{}).Count(&cnt.Publications)
	db.Model(&models.InquiryModel{}).Count(&cnt.Inquiries)
	db.Model(&models.InquiryModel{}).Where("`read` = ?", false).Count(&cnt.UnreadInquiries)
}
