package model

import "time"

// Page holds the fields every synced Notion row shares.
type Page struct {
	PageID     string
	TodoistID  string // empty until the row has a Todoist counterpart
	Title      string
	LastEdited time.Time
}

// Synced reports whether the row is linked to a Todoist entity.
func (p *Page) Synced() bool {
	return p.TodoistID != ""
}

// Area is a top-level grouping. It maps to a top-level Todoist project.
type Area struct {
	Page
	Projects []*Project
}

// Project maps to a Todoist project nested under its area's project.
type Project struct {
	Page
	AreaID string
	Tasks  []*Task
}

// Task is a row of the Notion tasks database.
type Task struct {
	Page
	ParentTaskID string
	ProjectID    string
	Due          *time.Time
	Priority     string // Notion select label, e.g. "🧀 Medium"
	Status       string // Kanban status label
	Done         bool
	Cold         bool
	SubTasks     []*Task
}
