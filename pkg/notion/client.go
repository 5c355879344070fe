package notion

import (
	"context"
	"log"
	"time"

	"github.com/jomei/notionapi"
)

// Property names used in the three databases.
const (
	propName           = "Name"
	propTodoistID      = "Todoist ID"
	propLastUpdate     = "Todoist Last Update"
	propType           = "Type"
	propArea           = "Area"
	propTask           = "Task"
	propParentTask     = "Parent Task"
	propProject        = "Project"
	propDue            = "Due"
	propPriority       = "Priority"
	propKanbanStatus   = "Kanban Status"
	propDone           = "Done"
	propCold           = "Cold"
	areaTypeSelectName = "Area"
)

// Databases holds the ids of the Areas, Projects and Tasks databases.
type Databases struct {
	Areas    notionapi.DatabaseID
	Projects notionapi.DatabaseID
	Tasks    notionapi.DatabaseID
}

type databaseQuerier interface {
	Query(ctx context.Context, id notionapi.DatabaseID, request *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

type pageWriter interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
	Update(ctx context.Context, id notionapi.PageID, request *notionapi.PageUpdateRequest) (*notionapi.Page, error)
}

// Client reads and writes the Notion side of the sync.
type Client struct {
	databases databaseQuerier
	pages     pageWriter
	dbs       Databases
	logger    *log.Logger
	now       func() time.Time
}

// NewClient wraps an authenticated notionapi client.
func NewClient(api *notionapi.Client, dbs Databases) *Client {
	return newClient(api.Database, api.Page, dbs)
}

func newClient(databases databaseQuerier, pages pageWriter, dbs Databases) *Client {
	return &Client{
		databases: databases,
		pages:     pages,
		dbs:       dbs,
		logger:    log.Default(),
		now:       time.Now,
	}
}

// SetLogger replaces the logger used for relation warnings.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}
