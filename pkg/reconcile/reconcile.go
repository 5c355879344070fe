// Package reconcile runs one Notion ⇄ Todoist synchronization.
//
// A run reads both sides once, links the Notion rows into a tree, pushes
// missing areas, projects and open tasks to Todoist while propagating
// completion (the forward pass), then imports Todoist tasks that Notion does
// not know about (the reverse pass). Every decision in a run is made against
// the Todoist state captured at its start.
package reconcile

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/todoist"
	"github.com/harrisonrobin/ntsync/pkg/tree"
)

// Documents is the Notion side. *notion.Client implements it.
type Documents interface {
	Areas(ctx context.Context) ([]*model.Area, error)
	Projects(ctx context.Context) ([]*model.Project, error)
	Tasks(ctx context.Context) ([]*model.Task, error)
	SetTodoistID(ctx context.Context, pageID, todoistID string) error
	MarkDone(ctx context.Context, pageID string) error
	CreateTask(ctx context.Context, task *model.Task) (string, error)
}

// TaskService is the Todoist side. *todoist.Client implements it.
type TaskService interface {
	GetProjects(ctx context.Context) ([]todoist.Project, error)
	GetTasks(ctx context.Context) ([]todoist.Task, error)
	AddProject(ctx context.Context, args todoist.AddProjectArgs) (*todoist.Project, error)
	AddTask(ctx context.Context, args todoist.AddTaskArgs) (*todoist.Task, error)
	CloseTask(ctx context.Context, id string) error
}

// Options configures a Reconciler.
type Options struct {
	AreaColour    string // colour of Todoist projects created for areas
	ProjectColour string // colour of Todoist projects created for projects
	Logger        *log.Logger
}

type Reconciler struct {
	docs   Documents
	svc    TaskService
	opts   Options
	logger *log.Logger
	report Report

	visited map[string]bool // task pages reconciled by the current forward pass
}

func New(docs Documents, svc TaskService, opts Options) *Reconciler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{docs: docs, svc: svc, opts: opts, logger: logger}
}

// Run performs a full synchronization. Only read failures are returned;
// write failures are logged, counted in the report, and retried next run.
func (r *Reconciler) Run(ctx context.Context) (Report, error) {
	r.report = Report{}

	var (
		areas    []*model.Area
		projects []*model.Project
		tasks    []*model.Task
		snap     *Snapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		areas, err = r.docs.Areas(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = r.docs.Projects(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = r.docs.Tasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap, err = TakeSnapshot(gctx, r.svc)
		return err
	})
	if err := g.Wait(); err != nil {
		return r.report, fmt.Errorf("failed to read current state: %w", err)
	}
	r.logger.Printf("Read %d areas, %d projects, %d tasks from Notion; %d projects, %d tasks from Todoist",
		len(areas), len(projects), len(tasks), len(snap.Projects), len(snap.Tasks))

	tree.Build(tasks, projects, areas)
	r.Forward(ctx, areas, snap)
	r.Reverse(ctx, tasks, snap)

	return r.report, nil
}

// Report counts what a run did.
type Report struct {
	ProjectsCreated int
	TasksCreated    int
	TasksClosed     int
	TasksMarkedDone int
	TasksImported   int
	Skipped         int
	Failures        int
}

func (rep Report) String() string {
	return fmt.Sprintf("projects created: %d, tasks created: %d, closed in todoist: %d, marked done in notion: %d, imported: %d, skipped: %d, failures: %d",
		rep.ProjectsCreated, rep.TasksCreated, rep.TasksClosed, rep.TasksMarkedDone, rep.TasksImported, rep.Skipped, rep.Failures)
}

// Report returns the counters of the last run.
func (r *Reconciler) Report() Report {
	return r.report
}

func (r *Reconciler) fail(format string, args ...any) {
	r.report.Failures++
	r.logger.Printf(format, args...)
}
