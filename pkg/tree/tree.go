// Package tree links the flat Notion rows into the Area → Project → Task hierarchy.
package tree

import "github.com/harrisonrobin/ntsync/pkg/model"

// Build fills the derived containment lists from the rows' foreign keys and
// returns areas. Lists keep fetch order. Existing lists are replaced, so
// calling Build again on the same rows gives the same result.
func Build(tasks []*model.Task, projects []*model.Project, areas []*model.Area) []*model.Area {
	tasksByPage := make(map[string]*model.Task, len(tasks))
	for _, t := range tasks {
		t.SubTasks = nil
		tasksByPage[t.PageID] = t
	}
	projectsByPage := make(map[string]*model.Project, len(projects))
	for _, p := range projects {
		p.Tasks = nil
		projectsByPage[p.PageID] = p
	}
	areasByPage := make(map[string]*model.Area, len(areas))
	for _, a := range areas {
		a.Projects = nil
		areasByPage[a.PageID] = a
	}

	for _, t := range tasks {
		if t.ParentTaskID != "" {
			if parent, ok := tasksByPage[t.ParentTaskID]; ok {
				parent.SubTasks = append(parent.SubTasks, t)
			}
		}
		if t.ProjectID != "" {
			if project, ok := projectsByPage[t.ProjectID]; ok {
				project.Tasks = append(project.Tasks, t)
			}
		}
	}
	for _, p := range projects {
		if p.AreaID == "" {
			continue
		}
		if area, ok := areasByPage[p.AreaID]; ok {
			area.Projects = append(area.Projects, p)
		}
	}
	return areas
}
