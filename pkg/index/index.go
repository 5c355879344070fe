package index

import "github.com/harrisonrobin/ntsync/pkg/model"

// PageIndex maps Todoist task ids to Notion page ids for the duration of a run.
// It is not safe for concurrent use.
type PageIndex struct {
	mappings map[string]string
}

func NewPageIndex() *PageIndex {
	return &PageIndex{mappings: make(map[string]string)}
}

// FromTasks indexes every task that already carries a Todoist id.
func FromTasks(tasks []*model.Task) *PageIndex {
	idx := NewPageIndex()
	for _, t := range tasks {
		if t.Synced() {
			idx.Set(t.TodoistID, t.PageID)
		}
	}
	return idx
}

// Get returns the page id for todoistID, or "" if none is known.
func (idx *PageIndex) Get(todoistID string) string {
	return idx.mappings[todoistID]
}

func (idx *PageIndex) Has(todoistID string) bool {
	_, ok := idx.mappings[todoistID]
	return ok
}

func (idx *PageIndex) Set(todoistID, pageID string) {
	idx.mappings[todoistID] = pageID
}
