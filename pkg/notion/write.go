package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/util"
)

func (c *Client) lastUpdate() *notionapi.DateProperty {
	now := notionapi.Date(c.now())
	return &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &now}}
}

// SetTodoistID records todoistID on a page and stamps the sync time.
func (c *Client) SetTodoistID(ctx context.Context, pageID, todoistID string) error {
	n, err := util.TodoistIDToNumber(todoistID)
	if err != nil {
		return err
	}
	props := notionapi.Properties{
		propTodoistID:  &notionapi.NumberProperty{Number: n},
		propLastUpdate: c.lastUpdate(),
	}
	if _, err := c.pages.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{Properties: props}); err != nil {
		return fmt.Errorf("failed to set todoist id on page %s: %w", pageID, err)
	}
	return nil
}

// MarkDone ticks the Done checkbox of a task page and stamps the sync time.
func (c *Client) MarkDone(ctx context.Context, pageID string) error {
	props := notionapi.Properties{
		propDone:       &notionapi.CheckboxProperty{Checkbox: true},
		propLastUpdate: c.lastUpdate(),
	}
	if _, err := c.pages.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{Properties: props}); err != nil {
		return fmt.Errorf("failed to mark page %s done: %w", pageID, err)
	}
	return nil
}

// CreateTask adds a row to the Tasks database for a task that exists only in
// Todoist and returns the new page id. task.ParentTaskID, when set, becomes
// the "Parent Task" relation.
func (c *Client) CreateTask(ctx context.Context, task *model.Task) (string, error) {
	n, err := util.TodoistIDToNumber(task.TodoistID)
	if err != nil {
		return "", err
	}
	props := notionapi.Properties{
		propTask: &notionapi.TitleProperty{
			Title: []notionapi.RichText{{Text: &notionapi.Text{Content: task.Title}}},
		},
		propTodoistID: &notionapi.NumberProperty{Number: n},
	}
	if task.Due != nil {
		due := notionapi.Date(*task.Due)
		props[propDue] = &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &due}}
	}
	if task.Priority != "" {
		props[propPriority] = &notionapi.SelectProperty{Select: notionapi.Option{Name: task.Priority}}
	}
	if task.ParentTaskID != "" {
		props[propParentTask] = &notionapi.RelationProperty{
			Relation: []notionapi.Relation{{ID: notionapi.PageID(task.ParentTaskID)}},
		}
	}

	page, err := c.pages.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.dbs.Tasks,
		},
		Properties: props,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create notion task %q: %w", task.Title, err)
	}
	return string(page.ID), nil
}
