package project

import "github.com/hjstudio/core/internal/models"

// ProjectDTO carries the full editable row for both add and update; the admin
// form submits every field each time.
type ProjectDTO struct {
	Title        string               `json:"title"       binding:"required"`
	Subtitle     string               `json:"subtitle"`
	Category     string               `json:"category"    binding:"required"`
	Location     string               `json:"location"    binding:"required"`
	Year         string               `json:"year"        binding:"required"`
	Area         string               `json:"area"`
	Architect    string               `json:"architect"`
	Photographer string               `json:"photographer"`
	Client       string               `json:"client"`
	Status       string               `json:"status"`
	HeroImage    string               `json:"hero_image"  binding:"required"`
	Description  string               `json:"description" binding:"required"`
	Images       models.StringArray   `json:"images"`
	Content      models.ContentBlocks `json:"content"`
}

// apply writes every editable field onto m, stripping blank list entries.
// Identifier and timestamps are untouched.
func (dto *ProjectDTO) apply(m *models.ProjectModel) {
	m.Title = dto.Title
	m.Subtitle = dto.Subtitle
	m.Category = dto.Category
	m.Location = dto.Location
	m.Year = dto.Year
	m.Area = dto.Area
	m.Architect = dto.Architect
	m.Photographer = dto.Photographer
	m.Client = dto.Client
	m.Status = dto.Status
	m.HeroImage = dto.HeroImage
	m.Description = dto.Description
	m.Images = dto.Images.Compact()
	m.Content = dto.Content.Compact()
}
