package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Value(t *testing.T) {
	t.Run("nil serializes as empty array", func(t *testing.T) {
		var a StringArray
		v, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("values serialize as JSON", func(t *testing.T) {
		a := StringArray{"one.jpg", "two.jpg"}
		v, err := a.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["one.jpg","two.jpg"]`, v.(string))
	})
}

func TestStringArray_Scan(t *testing.T) {
	t.Run("JSON array", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(`["a","b"]`))
		assert.Equal(t, StringArray{"a", "b"}, a)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(nil))
		assert.Empty(t, a)
	})

	t.Run("legacy quoted single string", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(`"solo.jpg"`))
		assert.Equal(t, StringArray{"solo.jpg"}, a)
	})

	t.Run("legacy bare string", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan("bare.jpg"))
		assert.Equal(t, StringArray{"bare.jpg"}, a)
	})

	t.Run("bytes input", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`["x"]`)))
		assert.Equal(t, StringArray{"x"}, a)
	})
}

func TestStringArray_Compact(t *testing.T) {
	a := StringArray{"keep.jpg", "", "  ", "also.jpg"}
	assert.Equal(t, StringArray{"keep.jpg", "also.jpg"}, a.Compact())
}

func TestContentBlock_Empty(t *testing.T) {
	assert.True(t, ContentBlock{Type: BlockText, Content: "  "}.Empty())
	assert.True(t, ContentBlock{Type: BlockImage}.Empty())
	assert.True(t, ContentBlock{Type: "video", Src: "x"}.Empty())
	assert.False(t, ContentBlock{Type: BlockText, Content: "hello"}.Empty())
	assert.False(t, ContentBlock{Type: BlockImage, Src: "/images/a.jpg"}.Empty())
}

func TestContentBlocks_Compact(t *testing.T) {
	blocks := ContentBlocks{
		{Type: BlockText, Content: "intro"},
		{Type: BlockText, Content: ""},
		{Type: BlockImage, Src: "/images/a.jpg", Caption: "a"},
		{Type: BlockImage, Src: "   "},
	}
	got := blocks.Compact()
	require.Len(t, got, 2)
	assert.Equal(t, "intro", got[0].Content)
	assert.Equal(t, "/images/a.jpg", got[1].Src)
}

func TestContentBlocks_Roundtrip(t *testing.T) {
	blocks := ContentBlocks{
		{Type: BlockText, Content: "body"},
		{Type: BlockImage, Src: "/images/b.jpg", Caption: "site"},
	}
	v, err := blocks.Value()
	require.NoError(t, err)

	var out ContentBlocks
	require.NoError(t, out.Scan(v))
	assert.Equal(t, blocks, out)
}
