package tracker

import "iter"

// Task is a titled unit of work with a completion flag.
type Task struct {
	Title     string
	Completed bool
}

// NewTask returns an incomplete task.
func NewTask(title string) Task {
	return Task{Title: title}
}

// Complete marks the task as done. Completing an already completed task
// leaves it unchanged.
func (t *Task) Complete() {
	t.Completed = true
}

// Project is a named, ordered collection of tasks.
type Project struct {
	Name  string
	Tasks []Task
}

// NewProject returns a project with no tasks.
func NewProject(name string) Project {
	return Project{Name: name, Tasks: []Task{}}
}

// AddTask appends a task to the project.
func (p *Project) AddTask(task Task) {
	p.Tasks = append(p.Tasks, task)
}

// ListTasks yields (completed, title) pairs in insertion order.
func (p *Project) ListTasks() iter.Seq2[bool, string] {
	return func(yield func(bool, string) bool) {
		for _, t := range p.Tasks {
			if !yield(t.Completed, t.Title) {
				return
			}
		}
	}
}

// User is a named, ordered collection of projects.
type User struct {
	Name     string
	Projects []Project
}

// NewUser returns a user with no projects.
func NewUser(name string) User {
	return User{Name: name, Projects: []Project{}}
}

// AddProject appends a project to the user.
func (u *User) AddProject(project Project) {
	u.Projects = append(u.Projects, project)
}

// ListProjects yields project names in insertion order.
func (u *User) ListProjects() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range u.Projects {
			if !yield(p.Name) {
				return
			}
		}
	}
}
