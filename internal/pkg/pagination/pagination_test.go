package pagination

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint `gorm:"primaryKey;autoIncrement"`
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := FromContext(queryContext(t, ""))
		assert.Equal(t, DefaultPage, q.Page)
		assert.Equal(t, DefaultSize, q.Size)
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		q := FromContext(queryContext(t, "page=-3&size=9999"))
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, MaxSize, q.Size)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		q := FromContext(queryContext(t, "page=abc&size=xyz"))
		assert.Equal(t, DefaultPage, q.Page)
		assert.Equal(t, DefaultSize, q.Size)
	})
}

func TestPaginate(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 25; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("w%02d", i)}).Error)
	}

	t.Run("first page", func(t *testing.T) {
		var items []widget
		pag, err := Paginate(db.Model(&widget{}).Order("id ASC"), Query{Page: 1, Size: 10}, &items)
		require.NoError(t, err)
		assert.Len(t, items, 10)
		assert.Equal(t, int64(25), pag.Total)
		assert.Equal(t, 3, pag.TotalPage)
		assert.True(t, pag.HasNextPage)
		assert.Equal(t, "w01", items[0].Name)
	})

	t.Run("last short page", func(t *testing.T) {
		var items []widget
		pag, err := Paginate(db.Model(&widget{}).Order("id ASC"), Query{Page: 3, Size: 10}, &items)
		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.False(t, pag.HasNextPage)
	})

	t.Run("page beyond end is empty", func(t *testing.T) {
		var items []widget
		pag, err := Paginate(db.Model(&widget{}).Order("id ASC"), Query{Page: 9, Size: 10}, &items)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(25), pag.Total)
	})
}
