package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagNamesFlattensPairs(t *testing.T) {
	it := TaigaItem{RawTags: [][]interface{}{
		{"backend", nil},
		{"urgent", "#ff0000"},
		{},
		{42, "#000000"}, // non-string name, skipped
	}}
	assert.Equal(t, []string{"backend", "urgent"}, it.TagNames())
}

func TestTagNamesNoTags(t *testing.T) {
	var it TaigaItem
	assert.Nil(t, it.TagNames())
}
