package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Block type discriminants for project body content.
const (
	BlockText  = "text"
	BlockImage = "image"
)

// ContentBlock is one ordered unit of a project's detail body,
// discriminated as text or image.
type ContentBlock struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Src     string `json:"src,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Empty reports whether the block carries no renderable payload.
func (b ContentBlock) Empty() bool {
	switch b.Type {
	case BlockText:
		return strings.TrimSpace(b.Content) == ""
	case BlockImage:
		return strings.TrimSpace(b.Src) == ""
	default:
		return true
	}
}

// ContentBlocks stores an ordered block sequence as a JSON column.
type ContentBlocks []ContentBlock

func (b ContentBlocks) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]ContentBlock(b))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (b *ContentBlocks) Scan(value interface{}) error {
	if b == nil {
		return fmt.Errorf("models.ContentBlocks: Scan on nil pointer")
	}
	if value == nil {
		*b = ContentBlocks{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.ContentBlocks: unsupported Scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*b = ContentBlocks{}
		return nil
	}

	var blocks []ContentBlock
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		return fmt.Errorf("models.ContentBlocks: %w", err)
	}
	*b = blocks
	return nil
}

// Compact returns a copy with empty blocks removed, order preserved.
func (b ContentBlocks) Compact() ContentBlocks {
	out := make(ContentBlocks, 0, len(b))
	for _, blk := range b {
		if !blk.Empty() {
			out = append(out, blk)
		}
	}
	return out
}
