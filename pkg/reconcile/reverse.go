package reconcile

import (
	"context"

	"github.com/harrisonrobin/ntsync/pkg/index"
	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/todoist"
	"github.com/harrisonrobin/ntsync/pkg/util"
)

// Reverse creates Notion pages for snapshot tasks that no Notion row claims.
// Top-level tasks go first. Sub-tasks follow in generations, each one once its
// parent has a page, so chains of any depth land in a single run. Sub-tasks
// whose parent never gets a page are skipped.
func (r *Reconciler) Reverse(ctx context.Context, tasks []*model.Task, snap *Snapshot) {
	pages := index.FromTasks(tasks)

	var roots, children []todoist.Task
	for _, t := range snap.Tasks {
		if pages.Has(t.ID) {
			continue
		}
		if t.ParentID == "" {
			roots = append(roots, t)
		} else {
			children = append(children, t)
		}
	}

	for _, t := range roots {
		r.importTask(ctx, t, "", pages)
	}

	pending := children
	for len(pending) > 0 {
		var waiting []todoist.Task
		for _, t := range pending {
			parentPage := pages.Get(t.ParentID)
			if parentPage == "" {
				waiting = append(waiting, t)
				continue
			}
			r.importTask(ctx, t, parentPage, pages)
		}
		if len(waiting) == len(pending) {
			break
		}
		pending = waiting
	}

	for _, t := range pending {
		r.report.Skipped++
		r.logger.Printf("Skipping Todoist task %s (%q): parent %s has no Notion page", t.ID, t.Content, t.ParentID)
	}
}

func (r *Reconciler) importTask(ctx context.Context, t todoist.Task, parentPage string, pages *index.PageIndex) {
	draft := &model.Task{
		Page:         model.Page{TodoistID: t.ID, Title: t.Content},
		ParentTaskID: parentPage,
	}
	if t.Due != nil {
		if due, err := t.Due.Time(); err == nil {
			draft.Due = &due
		} else {
			r.logger.Printf("Warning: ignoring due date of Todoist task %s: %v", t.ID, err)
		}
	}
	if label, ok := util.PriorityFromTodoist(t.Priority); ok {
		draft.Priority = label
	}

	pageID, err := r.docs.CreateTask(ctx, draft)
	if err != nil {
		r.fail("Error creating Notion page for Todoist task %s (%q): %v", t.ID, t.Content, err)
		return
	}
	pages.Set(t.ID, pageID)
	r.report.TasksImported++
}
