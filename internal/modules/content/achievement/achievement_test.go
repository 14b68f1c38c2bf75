package achievement

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/database"
	"github.com/hjstudio/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db)
}

func dtoFor(title, year, category string) *AchievementDTO {
	return &AchievementDTO{
		Title:        title,
		Organization: "IIA",
		Year:         year,
		Category:     category,
	}
}

func TestService_DefaultIcon(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(dtoFor("Best Residence", "2022", "award"))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAchievementIcon, created.Icon)

	dto := dtoFor("Green Cert", "2023", "certification")
	dto.Icon = "Star"
	created, err = svc.Create(dto)
	require.NoError(t, err)
	assert.Equal(t, "Star", created.Icon)
}

func TestService_ListGrouped(t *testing.T) {
	svc := newTestService(t)

	seed := []struct{ title, year, category string }{
		{"National Award", "2021", "award"},
		{"State Award", "2023", "award"},
		{"LEED AP", "2022", "certification"},
		{"Featured in AD", "2020", "publication"},
	}
	for _, s := range seed {
		_, err := svc.Create(dtoFor(s.title, s.year, s.category))
		require.NoError(t, err)
	}

	g, err := svc.ListGrouped()
	require.NoError(t, err)

	require.Len(t, g.Awards, 2)
	require.Len(t, g.Certifications, 1)
	require.Len(t, g.Publications, 1)

	// Newest year first inside each bucket.
	assert.Equal(t, "State Award", g.Awards[0].Title)
	assert.Equal(t, "National Award", g.Awards[1].Title)
}

func TestService_ListGrouped_Empty(t *testing.T) {
	svc := newTestService(t)

	g, err := svc.ListGrouped()
	require.NoError(t, err)
	assert.NotNil(t, g.Awards)
	assert.NotNil(t, g.Certifications)
	assert.NotNil(t, g.Publications)
	assert.Empty(t, g.Awards)
}

func TestService_YearOrdering(t *testing.T) {
	svc := newTestService(t)

	for _, year := range []string{"2019", "2024", "2021"} {
		_, err := svc.Create(dtoFor("a"+year, year, "award"))
		require.NoError(t, err)
	}

	items, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2024", items[0].Year)
	assert.Equal(t, "2021", items[1].Year)
	assert.Equal(t, "2019", items[2].Year)
}

func TestService_Replace(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(dtoFor("Draft", "2020", "award"))
	require.NoError(t, err)

	updated, err := svc.Replace(created.ID, dtoFor("Final", "2020", "publication"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.AchievementPublication, updated.Category)
}

func TestHandler_Meta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group(""), func(c *gin.Context) { c.Next() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/achievements/meta", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []string `json:"categories"`
		Icons      []string `json:"icons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"award", "certification", "publication"}, body.Categories)
	assert.Equal(t, models.AchievementIcons, body.Icons)
}
