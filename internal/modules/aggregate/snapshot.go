package aggregate

import (
	"context"
	"sync"
	"time"

	"github.com/hjstudio/core/internal/models"
	"gorm.io/gorm"
)

// Snapshot is the full content export the admin panel loads on startup.
// All six kinds are fetched concurrently; a kind that fails comes back as an
// empty list with its error recorded, so one bad table never blanks the rest.
type Snapshot struct {
	Projects     []models.ProjectModel       `json:"projects"`
	DesignBoard  []models.DesignBoardModel   `json:"design_board"`
	Instagram    []models.InstagramPostModel `json:"instagram_posts"`
	Testimonials []models.TestimonialModel   `json:"testimonials"`
	Achievements []models.AchievementModel   `json:"achievements"`
	Publications []models.PublicationModel   `json:"publications"`
	Errors       map[string]string           `json:"errors,omitempty"`
	GeneratedAt  time.Time                   `json:"generated_at"`
}

func buildSnapshot(ctx context.Context, db *gorm.DB) *Snapshot {
	snap := &Snapshot{
		Projects:     []models.ProjectModel{},
		DesignBoard:  []models.DesignBoardModel{},
		Instagram:    []models.InstagramPostModel{},
		Testimonials: []models.TestimonialModel{},
		Achievements: []models.AchievementModel{},
		Publications: []models.PublicationModel{},
		GeneratedAt:  time.Now(),
	}

	type kindError struct {
		kind string
		err  error
	}
	errs := make([]kindError, 6)

	fetch := func(i int, kind string, order string, dest interface{}) func() {
		return func() {
			if err := db.WithContext(ctx).Order(order).Find(dest).Error; err != nil {
				errs[i] = kindError{kind: kind, err: err}
			}
		}
	}

	jobs := []func(){
		fetch(0, "projects", "created_at DESC, id DESC", &snap.Projects),
		fetch(1, "design_board", "created_at DESC, id DESC", &snap.DesignBoard),
		fetch(2, "instagram_posts", "post_date DESC, id DESC", &snap.Instagram),
		fetch(3, "testimonials", "created_at DESC, id DESC", &snap.Testimonials),
		fetch(4, "achievements", "year DESC, id DESC", &snap.Achievements),
		fetch(5, "publications", "date DESC, id DESC", &snap.Publications),
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, job := range jobs {
		go func(run func()) {
			defer wg.Done()
			run()
		}(job)
	}
	wg.Wait()

	for _, e := range errs {
		if e.err == nil {
			continue
		}
		if snap.Errors == nil {
			snap.Errors = make(map[string]string)
		}
		snap.Errors[e.kind] = e.err.Error()
	}
	return snap
}
