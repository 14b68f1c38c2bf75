package inquiry

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hjstudio/core/internal/database"
	"github.com/hjstudio/core/internal/pkg/pagination"
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
	return NewService(db, nil, zap.NewNop())
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&InquiryDTO{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Message:   "Looking for a residential architect.",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.Read)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestService_MarkRead(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&InquiryDTO{
		FirstName: "Ravi",
		Email:     "ravi@example.com",
		Message:   "Office fit-out inquiry.",
	})
	require.NoError(t, err)

	updated, err := svc.MarkRead(created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Read)

	updated, err = svc.MarkRead(created.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Read)

	t.Run("missing inquiry", func(t *testing.T) {
		got, err := svc.MarkRead(999, true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestService_ListNewestFirst(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(&InquiryDTO{
			FirstName: fmt.Sprintf("Client%d", i),
			Email:     fmt.Sprintf("c%d@example.com", i),
			Message:   "hi",
		})
		require.NoError(t, err)
	}

	items, pag, err := svc.List(pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), pag.Total)
	assert.Equal(t, "Client2", items[0].FirstName)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&InquiryDTO{
		FirstName: "Temp",
		Email:     "temp@example.com",
		Message:   "delete me",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
