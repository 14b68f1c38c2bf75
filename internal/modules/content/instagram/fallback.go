package instagram

import "github.com/hjstudio/core/internal/models"

// fallbackPosts is the curated set shown before any posts exist in the store.
func fallbackPosts() []models.InstagramPostModel {
	return []models.InstagramPostModel{
		{
			Base:     models.Base{ID: 1},
			Image:    "/images/instagram-1.jpg",
			Likes:    245,
			Comments: 12,
			PostLink: "https://instagram.com/p/example1",
			PostDate: "2024-01-15T10:30:00Z",
			Caption:  "Contemporary villa design with clean lines and natural materials. #architecture #design #villa #hariomjangidarchitects",
		},
		{
			Base:     models.Base{ID: 2},
			Image:    "/images/instagram-2.jpg",
			Likes:    189,
			Comments: 8,
			PostLink: "https://instagram.com/p/example2",
			PostDate: "2024-01-12T14:20:00Z",
			Caption:  "Urban planning project showcasing sustainable development principles. #urbanplanning #sustainability #architecture",
		},
		{
			Base:     models.Base{ID: 3},
			Image:    "/images/instagram-3.jpg",
			Likes:    312,
			Comments: 18,
			PostLink: "https://instagram.com/p/example3",
			PostDate: "2024-01-10T09:15:00Z",
			Caption:  "Minimalist interior design concept for a corporate office space. #interiordesign #minimalism #office",
		},
		{
			Base:     models.Base{ID: 4},
			Image:    "/images/instagram-4.jpg",
			Likes:    156,
			Comments: 6,
			PostLink: "https://instagram.com/p/example4",
			PostDate: "2024-01-08T16:45:00Z",
			Caption:  "Green building design incorporating renewable energy solutions. #greenbuilding #sustainable #architecture",
		},
		{
			Base:     models.Base{ID: 5},
			Image:    "/images/instagram-5.jpg",
			Likes:    278,
			Comments: 15,
			PostLink: "https://instagram.com/p/example5",
			PostDate: "2024-01-05T11:30:00Z",
			Caption:  "Luxury residential complex with integrated community spaces. #residential #luxury #community #pool",
		},
		{
			Base:     models.Base{ID: 6},
			Image:    "/images/instagram-6.jpg",
			Likes:    203,
			Comments: 9,
			PostLink: "https://instagram.com/p/example6",
			PostDate: "2024-01-03T13:20:00Z",
			Caption:  "Cultural center design celebrating local heritage and modern functionality. #culturalcenter #heritage #modern",
		},
	}
}
