package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/harrisonrobin/ntsync/pkg/model"
	"github.com/harrisonrobin/ntsync/pkg/todoist"
)

var errRemote = errors.New("remote unavailable")

type fakeDocs struct {
	areas    []*model.Area
	projects []*model.Project
	tasks    []*model.Task
	readErr  error

	setIDs    map[string]string // page id -> todoist id
	setOrder  []string
	markDone  []string
	created   []*model.Task
	createErr map[string]bool // todoist ids whose import fails
	setErr    error
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{setIDs: map[string]string{}, createErr: map[string]bool{}}
}

func (f *fakeDocs) Areas(ctx context.Context) ([]*model.Area, error) {
	return f.areas, f.readErr
}

func (f *fakeDocs) Projects(ctx context.Context) ([]*model.Project, error) {
	return f.projects, f.readErr
}

func (f *fakeDocs) Tasks(ctx context.Context) ([]*model.Task, error) {
	return f.tasks, f.readErr
}

func (f *fakeDocs) SetTodoistID(ctx context.Context, pageID, todoistID string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setIDs[pageID] = todoistID
	f.setOrder = append(f.setOrder, pageID)
	return nil
}

func (f *fakeDocs) MarkDone(ctx context.Context, pageID string) error {
	f.markDone = append(f.markDone, pageID)
	return nil
}

func (f *fakeDocs) CreateTask(ctx context.Context, task *model.Task) (string, error) {
	if f.createErr[task.TodoistID] {
		return "", errRemote
	}
	f.created = append(f.created, task)
	return fmt.Sprintf("page-%s", task.TodoistID), nil
}

type fakeService struct {
	projects []todoist.Project
	tasks    []todoist.Task
	readErr  error

	nextID         int
	addedProjects  []todoist.AddProjectArgs
	addedTasks     []todoist.AddTaskArgs
	closed         []string
	failProjectFor map[string]bool // project names whose creation fails
	failTaskFor    map[string]bool // task contents whose creation fails
}

func newFakeService() *fakeService {
	return &fakeService{nextID: 1000, failProjectFor: map[string]bool{}, failTaskFor: map[string]bool{}}
}

func (f *fakeService) id() string {
	f.nextID++
	return fmt.Sprint(f.nextID)
}

func (f *fakeService) GetProjects(ctx context.Context) ([]todoist.Project, error) {
	return f.projects, f.readErr
}

func (f *fakeService) GetTasks(ctx context.Context) ([]todoist.Task, error) {
	return f.tasks, f.readErr
}

func (f *fakeService) AddProject(ctx context.Context, args todoist.AddProjectArgs) (*todoist.Project, error) {
	if f.failProjectFor[args.Name] {
		return nil, errRemote
	}
	f.addedProjects = append(f.addedProjects, args)
	return &todoist.Project{ID: f.id(), Name: args.Name, ParentID: args.ParentID}, nil
}

func (f *fakeService) AddTask(ctx context.Context, args todoist.AddTaskArgs) (*todoist.Task, error) {
	if f.failTaskFor[args.Content] {
		return nil, errRemote
	}
	f.addedTasks = append(f.addedTasks, args)
	return &todoist.Task{ID: f.id(), Content: args.Content, ProjectID: args.ProjectID, ParentID: args.ParentID}, nil
}

func (f *fakeService) CloseTask(ctx context.Context, id string) error {
	f.closed = append(f.closed, id)
	return nil
}

func (f *fakeService) writes() int {
	return len(f.addedProjects) + len(f.addedTasks) + len(f.closed)
}

func quietOptions() Options {
	return Options{
		AreaColour:    "berry_red",
		ProjectColour: "sky_blue",
		Logger:        log.New(io.Discard, "", 0),
	}
}
