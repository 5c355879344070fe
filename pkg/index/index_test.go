package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrisonrobin/ntsync/pkg/model"
)

func TestFromTasks(t *testing.T) {
	tasks := []*model.Task{
		{Page: model.Page{PageID: "p1", TodoistID: "100"}},
		{Page: model.Page{PageID: "p2"}},
		{Page: model.Page{PageID: "p3", TodoistID: "300"}},
	}

	idx := FromTasks(tasks)

	assert.Equal(t, "p1", idx.Get("100"))
	assert.Equal(t, "p3", idx.Get("300"))
	assert.False(t, idx.Has(""))
	assert.Equal(t, "", idx.Get("200"))
}

func TestSetOverwrites(t *testing.T) {
	idx := NewPageIndex()
	idx.Set("1", "a")
	idx.Set("1", "b")

	assert.True(t, idx.Has("1"))
	assert.Equal(t, "b", idx.Get("1"))
	assert.False(t, idx.Has("2"))
}
