package reconcile

import (
	"context"

	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/todoist"
	"github.com/harrisonrobin/ntsync/pkg/util"
)

// Forward pushes Notion state to Todoist, walking areas, their projects and
// the projects' tasks in fetch order. Calls are issued one at a time, and each
// task is reconciled at most once per run.
func (r *Reconciler) Forward(ctx context.Context, areas []*model.Area, snap *Snapshot) {
	r.visited = make(map[string]bool)

	listed := make(map[string]bool)
	for _, area := range areas {
		for _, project := range area.Projects {
			for _, task := range project.Tasks {
				listed[task.PageID] = true
			}
		}
	}

	for _, area := range areas {
		r.syncProject(ctx, &area.Page, "", r.opts.AreaColour, true)
		for _, project := range area.Projects {
			r.syncProject(ctx, &project.Page, area.TodoistID, r.opts.ProjectColour, area.Synced())

			for _, task := range project.Tasks {
				// Sub-tasks are reached through their parent, even when the
				// parent belongs to another project.
				if listed[task.ParentTaskID] {
					continue
				}
				r.syncTask(ctx, task, snap, project.TodoistID, "", project.Synced())
			}
		}
	}
}

// syncProject creates the Todoist project for an area or project that has
// none. A project is only created once its area has a Todoist project to nest
// under; until then it is skipped.
func (r *Reconciler) syncProject(ctx context.Context, page *model.Page, parentID, colour string, attachable bool) {
	if page.Synced() {
		return
	}
	if !attachable {
		r.report.Skipped++
		r.logger.Printf("Skipping project %q: its area is not in Todoist", page.Title)
		return
	}
	created, err := r.svc.AddProject(ctx, todoist.AddProjectArgs{
		Name:     page.Title,
		Color:    colour,
		ParentID: parentID,
	})
	if err != nil {
		r.fail("Error creating Todoist project for %q: %v", page.Title, err)
		return
	}
	if created.ID == "" {
		r.fail("Error creating Todoist project for %q: no id returned", page.Title)
		return
	}
	page.TodoistID = created.ID
	r.report.ProjectsCreated++
	if err := r.docs.SetTodoistID(ctx, page.PageID, created.ID); err != nil {
		r.fail("Error saving Todoist id %s on %q: %v", created.ID, page.Title, err)
	}
}

// syncTask reconciles one task and, while it is open, its sub-tasks.
// attachable is false when there is no live Todoist parent (project or task)
// to create the task under; such tasks are left for a later run.
func (r *Reconciler) syncTask(ctx context.Context, task *model.Task, snap *Snapshot, projectID, parentID string, attachable bool) {
	if r.visited[task.PageID] {
		return
	}
	r.visited[task.PageID] = true

	if task.Done {
		r.syncDoneTask(ctx, task, snap)
		return
	}

	live := true
	switch {
	case !task.Synced():
		if !attachable {
			r.report.Skipped++
			r.logger.Printf("Skipping %q: its parent is not in Todoist", task.Title)
			live = false
			break
		}
		r.createTask(ctx, task, projectID, parentID)
		live = task.Synced()
	case !snap.HasTask(task.TodoistID):
		// Completed or deleted in Todoist.
		r.markDone(ctx, task)
		live = false
	}

	for _, sub := range task.SubTasks {
		r.syncTask(ctx, sub, snap, projectID, task.TodoistID, live)
	}
}

func (r *Reconciler) syncDoneTask(ctx context.Context, task *model.Task, snap *Snapshot) {
	if !task.Synced() {
		return
	}
	if !snap.HasTask(task.TodoistID) {
		r.markDone(ctx, task)
		return
	}
	if err := r.svc.CloseTask(ctx, task.TodoistID); err != nil {
		r.fail("Error closing Todoist task %s (%q): %v", task.TodoistID, task.Title, err)
		return
	}
	r.report.TasksClosed++
	if err := r.docs.SetTodoistID(ctx, task.PageID, task.TodoistID); err != nil {
		r.fail("Error updating sync time on %q: %v", task.Title, err)
	}
}

func (r *Reconciler) createTask(ctx context.Context, task *model.Task, projectID, parentID string) {
	args := todoist.AddTaskArgs{
		Content:   task.Title,
		ProjectID: projectID,
		ParentID:  parentID,
		DueDate:   util.FormatDueDate(task.Due),
	}
	if p, ok := util.PriorityToTodoist(task.Priority); ok {
		args.Priority = p
	}
	created, err := r.svc.AddTask(ctx, args)
	if err != nil {
		r.fail("Error creating Todoist task for %q: %v", task.Title, err)
		return
	}
	if created.ID == "" {
		r.fail("Error creating Todoist task for %q: no id returned", task.Title)
		return
	}
	task.TodoistID = created.ID
	r.report.TasksCreated++
	if err := r.docs.SetTodoistID(ctx, task.PageID, created.ID); err != nil {
		r.fail("Error saving Todoist id %s on %q: %v", created.ID, task.Title, err)
	}
}

// markDone ticks Done in Notion. The in-memory flag is left alone so the
// caller still walks the sub-tasks and can propagate completion to them.
func (r *Reconciler) markDone(ctx context.Context, task *model.Task) {
	if err := r.docs.MarkDone(ctx, task.PageID); err != nil {
		r.fail("Error marking %q done: %v", task.Title, err)
		return
	}
	r.report.TasksMarkedDone++
}
