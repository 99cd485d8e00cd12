package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchResult_Order(t *testing.T) {
	r := NewMatchResult()
	assert.True(t, r.Empty())

	r.Add("b.exe", "/one/")
	r.Add("a.exe", "/one/")
	r.Add("b.exe", "/two/")

	assert.False(t, r.Empty())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"b.exe", "a.exe"}, r.Names())
	assert.Equal(t, []string{"/one/", "/two/"}, r.Dirs("b.exe"))
	assert.Nil(t, r.Dirs("missing.exe"))

	var visited []string
	r.Each(func(name string, dirs []string) {
		visited = append(visited, name)
	})
	assert.Equal(t, []string{"b.exe", "a.exe"}, visited)
}

func TestTotals(t *testing.T) {
	first := NewMatchResult()
	first.Add("tool.exe", "/a/")
	first.Add("tool.exe", "/b/")

	second := NewMatchResult()
	second.Add("tool.bat", "/b/")
	second.Add("tool.exe", "/c/")

	var totals Totals
	assert.Empty(t, totals.Filenames())

	totals.Add(first)
	totals.Add(second)
	totals.Add(NewMatchResult())

	assert.Equal(t, []string{"tool.exe", "tool.bat"}, totals.Filenames())
	assert.Equal(t, []string{"/a/", "/b/", "/c/"}, totals.Directories())
}
