package todoist

import (
	"fmt"
	"time"
)

const dueDateLayout = "2006-01-02"

// Project is a Todoist project as returned by the REST API.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	Order    int    `json:"order,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Due is the due object attached to a task.
type Due struct {
	Date        string `json:"date"`
	String      string `json:"string,omitempty"`
	Datetime    string `json:"datetime,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// Time parses the calendar date of the due object. Date-only values are
// returned as midnight UTC.
func (d *Due) Time() (time.Time, error) {
	if d == nil || d.Date == "" {
		return time.Time{}, fmt.Errorf("empty due date")
	}
	if len(d.Date) > len(dueDateLayout) {
		t, err := time.Parse(time.RFC3339, d.Date)
		if err == nil {
			return t, nil
		}
		// Floating datetimes come without a zone, e.g. 2016-12-01T12:00:00.
		return time.Parse("2006-01-02T15:04:05", d.Date)
	}
	return time.Parse(dueDateLayout, d.Date)
}

// Task is an active Todoist task.
type Task struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	SectionID   string `json:"section_id,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
	IsCompleted bool   `json:"is_completed"`
	Due         *Due   `json:"due,omitempty"`
	URL         string `json:"url,omitempty"`
}

// AddProjectArgs is the body of a create-project request.
type AddProjectArgs struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// AddTaskArgs is the body of a create-task request.
type AddTaskArgs struct {
	Content   string `json:"content"`
	ProjectID string `json:"project_id,omitempty"`
	ParentID  string `json:"parent_id,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
	Priority  int    `json:"priority,omitempty"`
}
