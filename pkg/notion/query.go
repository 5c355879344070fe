package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/ntsync/pkg/model"
)

// RemoteQueryError is returned when a page of a database query fails.
// Reads are all-or-nothing: rows fetched before the failure are discarded.
type RemoteQueryError struct {
	Database notionapi.DatabaseID
	Cursor   notionapi.Cursor
	Err      error
}

func (e *RemoteQueryError) Error() string {
	if e.Cursor == "" {
		return fmt.Sprintf("notion: query of database %s failed: %v", e.Database, e.Err)
	}
	return fmt.Sprintf("notion: query of database %s failed at cursor %s: %v", e.Database, e.Cursor, e.Err)
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}

// QueryAll returns every row of database matching filter (nil for all rows),
// following pagination cursors until Notion reports no more pages.
func (c *Client) QueryAll(ctx context.Context, database notionapi.DatabaseID, filter notionapi.Filter) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor
	for {
		req := &notionapi.DatabaseQueryRequest{
			Filter:      filter,
			StartCursor: cursor,
		}
		resp, err := c.databases.Query(ctx, database, req)
		if err != nil {
			return nil, &RemoteQueryError{Database: database, Cursor: cursor, Err: err}
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return pages, nil
}

// Areas returns rows of the Areas database whose Type is "Area".
func (c *Client) Areas(ctx context.Context) ([]*model.Area, error) {
	filter := notionapi.PropertyFilter{
		Property: propType,
		Select:   &notionapi.SelectFilterCondition{Equals: areaTypeSelectName},
	}
	pages, err := c.QueryAll(ctx, c.dbs.Areas, filter)
	if err != nil {
		return nil, err
	}
	areas := make([]*model.Area, 0, len(pages))
	for i := range pages {
		areas = append(areas, areaFromPage(&pages[i]))
	}
	return areas, nil
}

func (c *Client) Projects(ctx context.Context) ([]*model.Project, error) {
	pages, err := c.QueryAll(ctx, c.dbs.Projects, nil)
	if err != nil {
		return nil, err
	}
	projects := make([]*model.Project, 0, len(pages))
	for i := range pages {
		projects = append(projects, c.projectFromPage(&pages[i]))
	}
	return projects, nil
}

func (c *Client) Tasks(ctx context.Context) ([]*model.Task, error) {
	pages, err := c.QueryAll(ctx, c.dbs.Tasks, nil)
	if err != nil {
		return nil, err
	}
	tasks := make([]*model.Task, 0, len(pages))
	for i := range pages {
		tasks = append(tasks, c.taskFromPage(&pages[i]))
	}
	return tasks, nil
}
