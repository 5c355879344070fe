package notion

import (
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/util"
)

func areaFromPage(page *notionapi.Page) *model.Area {
	return &model.Area{
		Page: model.Page{
			PageID:     string(page.ID),
			TodoistID:  util.TodoistIDFromNumber(numberOf(page.Properties, propTodoistID)),
			Title:      emojiOf(page) + titleOf(page.Properties, propName),
			LastEdited: page.LastEditedTime,
		},
	}
}

func (c *Client) projectFromPage(page *notionapi.Page) *model.Project {
	return &model.Project{
		Page: model.Page{
			PageID:     string(page.ID),
			TodoistID:  util.TodoistIDFromNumber(numberOf(page.Properties, propTodoistID)),
			Title:      titleOf(page.Properties, propName),
			LastEdited: page.LastEditedTime,
		},
		AreaID: c.relationOf(page, propArea),
	}
}

func (c *Client) taskFromPage(page *notionapi.Page) *model.Task {
	props := page.Properties
	return &model.Task{
		Page: model.Page{
			PageID:     string(page.ID),
			TodoistID:  util.TodoistIDFromNumber(numberOf(props, propTodoistID)),
			Title:      titleOf(props, propTask),
			LastEdited: page.LastEditedTime,
		},
		ParentTaskID: c.relationOf(page, propParentTask),
		ProjectID:    c.relationOf(page, propProject),
		Due:          dateOf(props, propDue),
		Priority:     selectOf(props, propPriority),
		Status:       selectOf(props, propKanbanStatus),
		Done:         checkboxOf(props, propDone),
		Cold:         formulaBoolOf(props, propCold),
	}
}

// plainText joins every fragment of a rich text value.
func plainText(rt []notionapi.RichText) string {
	var b strings.Builder
	for _, r := range rt {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

func titleOf(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.TitleProperty); ok {
		return plainText(p.Title)
	}
	return ""
}

func numberOf(props notionapi.Properties, name string) float64 {
	if p, ok := props[name].(*notionapi.NumberProperty); ok {
		return p.Number
	}
	return 0
}

func selectOf(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.SelectProperty); ok {
		return p.Select.Name
	}
	return ""
}

func checkboxOf(props notionapi.Properties, name string) bool {
	if p, ok := props[name].(*notionapi.CheckboxProperty); ok {
		return p.Checkbox
	}
	return false
}

func formulaBoolOf(props notionapi.Properties, name string) bool {
	if p, ok := props[name].(*notionapi.FormulaProperty); ok {
		return p.Formula.Boolean
	}
	return false
}

func dateOf(props notionapi.Properties, name string) *time.Time {
	p, ok := props[name].(*notionapi.DateProperty)
	if !ok || p.Date == nil || p.Date.Start == nil {
		return nil
	}
	t := time.Time(*p.Date.Start)
	return &t
}

// relationOf returns the first target of a relation property. Relations are
// treated as single-valued; extra targets are logged and ignored.
func (c *Client) relationOf(page *notionapi.Page, name string) string {
	p, ok := page.Properties[name].(*notionapi.RelationProperty)
	if !ok || len(p.Relation) == 0 {
		return ""
	}
	if len(p.Relation) > 1 {
		c.logger.Printf("Warning: page %s has %d %q relations, using the first", page.ID, len(p.Relation), name)
	}
	return string(p.Relation[0].ID)
}

func emojiOf(page *notionapi.Page) string {
	if page.Icon == nil || page.Icon.Type != "emoji" || page.Icon.Emoji == nil {
		return ""
	}
	return string(*page.Icon.Emoji)
}
