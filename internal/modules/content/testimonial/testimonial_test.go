package testimonial

import (
	"fmt"
	"strings"
	"testing"

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

func baseDTO(name string) *TestimonialDTO {
	return &TestimonialDTO{
		Name:    name,
		Role:    "Homeowner",
		Company: "Private Client",
		Text:    "Wonderful to work with.",
	}
}

func TestService_DefaultRating(t *testing.T) {
	svc := newTestService(t)

	t.Run("omitted rating defaults", func(t *testing.T) {
		created, err := svc.Create(baseDTO("Asha"))
		require.NoError(t, err)
		assert.Equal(t, models.DefaultTestimonialRating, created.Rating)
	})

	t.Run("explicit rating kept", func(t *testing.T) {
		dto := baseDTO("Ravi")
		rating := 3
		dto.Rating = &rating
		created, err := svc.Create(dto)
		require.NoError(t, err)
		assert.Equal(t, 3, created.Rating)
	})

	t.Run("replace with omitted rating resets to default", func(t *testing.T) {
		dto := baseDTO("Meera")
		rating := 2
		dto.Rating = &rating
		created, err := svc.Create(dto)
		require.NoError(t, err)

		updated, err := svc.Replace(created.ID, baseDTO("Meera"))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, models.DefaultTestimonialRating, updated.Rating)
	})
}

func TestService_Featured(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 4; i++ {
		dto := baseDTO(fmt.Sprintf("Client %d", i))
		dto.Featured = i%2 == 0
		_, err := svc.Create(dto)
		require.NoError(t, err)
	}

	items, err := svc.ListFeatured(0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.Featured)
	}

	limited, err := svc.ListFeatured(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(baseDTO("Temp"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
