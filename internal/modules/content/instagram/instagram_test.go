package instagram

import (
	"testing"

	"github.com/hjstudio/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postFor(image, date string) *PostDTO {
	return &PostDTO{Image: image, PostDate: date}
}

func TestService_CreateDefaults(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	created, err := svc.Create(postFor("/images/insta-1.jpg", "2024-01-15T00:00:00Z"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Zero(t, created.Likes)
	assert.Zero(t, created.Comments)
	assert.Empty(t, created.PostLink)
	assert.Empty(t, created.Caption)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/images/insta-1.jpg", got.Image)
}

func TestService_GetByID_Missing(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	got, err := svc.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Replace(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	created, err := svc.Create(&PostDTO{
		Image:    "/images/old.jpg",
		Likes:    12,
		Comments: 3,
		PostDate: "2024-02-01T00:00:00Z",
		Caption:  "before",
	})
	require.NoError(t, err)

	updated, err := svc.Replace(created.ID, &PostDTO{
		Image:    "/images/new.jpg",
		Likes:    40,
		PostDate: "2024-02-01T00:00:00Z",
		Caption:  "after",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "/images/new.jpg", updated.Image)
	assert.Equal(t, 40, updated.Likes)
	assert.Zero(t, updated.Comments)
	assert.Equal(t, "after", updated.Caption)

	missing, err := svc.Replace(9999, postFor("/images/x.jpg", "2024-02-02T00:00:00Z"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	created, err := svc.Create(postFor("/images/gone.jpg", "2024-03-01T00:00:00Z"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_PostDateOrdering(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	for _, date := range []string{
		"2024-01-05T00:00:00Z",
		"2024-03-20T00:00:00Z",
		"2024-02-11T00:00:00Z",
	} {
		_, err := svc.Create(postFor("/images/"+date+".jpg", date))
		require.NoError(t, err)
	}

	items, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2024-03-20T00:00:00Z", items[0].PostDate)
	assert.Equal(t, "2024-02-11T00:00:00Z", items[1].PostDate)
	assert.Equal(t, "2024-01-05T00:00:00Z", items[2].PostDate)
}

func TestService_ListPublic_StoreError(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())
	require.NoError(t, db.Migrator().DropTable(&models.InstagramPostModel{}))

	items := svc.ListPublic()
	assert.Len(t, items, 6)
}
