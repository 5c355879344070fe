package util

import (
	"fmt"
	"strconv"
	"time"
)

// Notion priority select labels.
const (
	PRIORITY_HIGH   = "🚨HIGH"
	PRIORITY_MEDIUM = "🧀 Medium"
	PRIORITY_LOW    = "🧊 Low"
)

// DueDateLayout is the date-only layout Todoist accepts in due_date.
const DueDateLayout = "2006-01-02"

// PriorityToTodoist converts a Notion priority label to a Todoist priority (4 = urgent).
// Unknown or empty labels return false, leaving Todoist's default in place.
func PriorityToTodoist(label string) (int, bool) {
	switch label {
	case PRIORITY_HIGH:
		return 4, true
	case PRIORITY_MEDIUM:
		return 3, true
	case PRIORITY_LOW:
		return 2, true
	}
	return 0, false
}

// PriorityFromTodoist converts a Todoist priority to a Notion label.
// Both 1 and 2 map to PRIORITY_LOW, so the table is not a bijection.
func PriorityFromTodoist(priority int) (string, bool) {
	switch priority {
	case 4:
		return PRIORITY_HIGH, true
	case 3:
		return PRIORITY_MEDIUM, true
	case 2, 1:
		return PRIORITY_LOW, true
	}
	return "", false
}

// TodoistIDFromNumber converts the Notion "Todoist ID" number to the string id
// Todoist uses. Zero (which is also what a null number decodes to) means unset.
func TodoistIDFromNumber(n float64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// TodoistIDToNumber converts a Todoist id to the value stored in Notion.
func TodoistIDToNumber(id string) (float64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("todoist id %q is not numeric: %w", id, err)
	}
	return float64(n), nil
}

// FormatDueDate renders a due date for Todoist. A nil date yields "".
func FormatDueDate(due *time.Time) string {
	if due == nil || due.IsZero() {
		return ""
	}
	return due.Format(DueDateLayout)
}
