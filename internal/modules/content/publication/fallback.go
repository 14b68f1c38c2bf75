package publication

import "github.com/hjstudio/core/internal/models"

// fallbackPublications is the press list served when the store is empty or
// unreachable. Kept in date DESC order to match the live query.
func fallbackPublications() []models.PublicationModel {
	return []models.PublicationModel{
		{
			Base:        models.Base{ID: 4},
			Title:       "The Future of Residential Design",
			Journal:     "Home & Design Magazine",
			Date:        "2023-06-05",
			Author:      models.DefaultPublicationAuthor,
			Image:       "/images/modern-villa.jpg",
			Description: "Examining emerging trends in residential architecture and their impact on lifestyle and sustainability.",
			Link:        "#",
			Featured:    true,
		},
		{
			Base:        models.Base{ID: 5},
			Title:       "Commercial Architecture Innovation",
			Journal:     "Business Architecture Review",
			Date:        "2023-04-12",
			Author:      models.DefaultPublicationAuthor,
			Image:       "/images/corporate-building.jpg",
			Description: "How innovative commercial architecture is reshaping the modern workplace environment.",
			Link:        "#",
			Featured:    false,
		},
		{
			Base:        models.Base{ID: 1},
			Title:       "Sustainable Architecture in Urban Planning",
			Journal:     "Architectural Review India",
			Date:        "2023-03-15",
			Author:      models.DefaultPublicationAuthor,
			Image:       "/images/publication-1.jpg",
			Description: "An in-depth analysis of sustainable design principles and their implementation in modern urban architecture.",
			Link:        "#",
			Featured:    true,
		},
		{
			Base:        models.Base{ID: 2},
			Title:       "Contemporary Design Trends",
			Journal:     "Design Today",
			Date:        "2023-01-20",
			Author:      models.DefaultPublicationAuthor,
			Image:       "/images/publication-2.jpg",
			Description: "Exploring the evolution of contemporary architectural design and its impact on modern living spaces.",
			Link:        "#",
			Featured:    true,
		},
		{
			Base:        models.Base{ID: 3},
			Title:       "Green Building Technologies",
			Journal:     "Eco Architecture Quarterly",
			Date:        "2022-11-10",
			Author:      models.DefaultPublicationAuthor,
			Image:       "/images/publication-3.jpg",
			Description: "Research on innovative green building technologies and their practical applications in construction.",
			Link:        "#",
			Featured:    false,
		},
	}
}
