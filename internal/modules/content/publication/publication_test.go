package publication

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hjstudio/core/internal/database"
	"github.com/hjstudio/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db, zap.NewNop())
}

func dtoFor(title, date string) *PublicationDTO {
	return &PublicationDTO{
		Title:   title,
		Journal: "Design Today",
		Date:    date,
	}
}

func TestService_AuthorDefault(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(dtoFor("Unsigned piece", "2023-05-01"))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPublicationAuthor, created.Author)

	dto := dtoFor("Guest piece", "2023-06-01")
	dto.Author = "Guest Writer"
	created, err = svc.Create(dto)
	require.NoError(t, err)
	assert.Equal(t, "Guest Writer", created.Author)
}

func TestService_DateOrdering(t *testing.T) {
	svc := newTestService(t)

	for _, date := range []string{"2022-11-10", "2023-06-05", "2023-01-20"} {
		_, err := svc.Create(dtoFor("p"+date, date))
		require.NoError(t, err)
	}

	items, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2023-06-05", items[0].Date)
	assert.Equal(t, "2023-01-20", items[1].Date)
	assert.Equal(t, "2022-11-10", items[2].Date)
}

func TestService_ListPublic(t *testing.T) {
	t.Run("empty store serves fallback", func(t *testing.T) {
		svc := newTestService(t)
		items := svc.ListPublic()
		require.NotEmpty(t, items)
		assert.Equal(t, "The Future of Residential Design", items[0].Title)
		for _, it := range items {
			assert.Equal(t, models.DefaultPublicationAuthor, it.Author)
		}
	})

	t.Run("stored rows win over fallback", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Create(dtoFor("Real article", "2024-02-02"))
		require.NoError(t, err)

		items := svc.ListPublic()
		require.Len(t, items, 1)
		assert.Equal(t, "Real article", items[0].Title)
	})

	t.Run("store error serves fallback", func(t *testing.T) {
		svc := newTestService(t)
		require.NoError(t, svc.db.Migrator().DropTable(&models.PublicationModel{}))

		items := svc.ListPublic()
		assert.Equal(t, fallbackPublications(), items)
	})
}

func TestService_OmittedLink(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(dtoFor("No link", "2023-09-09"))
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Link)
}

func TestFallbackPublications_SortedByDateDesc(t *testing.T) {
	items := fallbackPublications()
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Date, items[i].Date)
	}
}
