package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/projman/internal/tracker"
)

// addTaskCommand appends a task to the first project with the given name.
// Without -user the search spans every user's projects.
func addTaskCommand(_ context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("add_task", flag.ContinueOnError)
	owner := fs.String("user", "", "Only search projects owned by this user")
	rest, err := e.parseArgs(lookupCommand("add_task"), fs, args)
	if err != nil {
		return err
	}
	projectName, title := rest[0], rest[1]

	users, err := e.store.Load()
	if err != nil {
		return err
	}

	var project *tracker.Project
	if *owner != "" {
		project, err = tracker.FindUserProject(users, *owner, projectName)
	} else {
		project, err = tracker.FindProject(users, projectName)
	}
	if err != nil {
		return e.notFound(err, "Project '%s' not found.", projectName)
	}

	project.AddTask(tracker.NewTask(title))
	if err := e.store.Save(users); err != nil {
		return err
	}

	e.logger.Info("added task", "project", projectName, "task", title, "user", *owner)
	fmt.Fprintf(e.out, "📝 Task '%s' added to project '%s'.\n", title, projectName)
	return nil
}

// listTasksCommand prints the tasks of the first project with the given name.
func listTasksCommand(_ context.Context, e *env, args []string) error {
	rest, err := e.parseArgs(lookupCommand("list_tasks"), nil, args)
	if err != nil {
		return err
	}
	projectName := rest[0]

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	project, err := tracker.FindProject(users, projectName)
	if err != nil {
		return e.notFound(err, "Project '%s' not found.", projectName)
	}

	if len(project.Tasks) == 0 {
		fmt.Fprintf(e.out, "No tasks for project '%s'.\n", projectName)
		return nil
	}
	for completed, title := range project.ListTasks() {
		mark := "❌"
		if completed {
			mark = "✅"
		}
		fmt.Fprintf(e.out, "  %s %s\n", mark, title)
	}
	return nil
}

// completeTaskCommand marks the first task with the given title as complete.
// Completing an already completed task is not an error.
func completeTaskCommand(_ context.Context, e *env, args []string) error {
	rest, err := e.parseArgs(lookupCommand("complete_task"), nil, args)
	if err != nil {
		return err
	}
	title := rest[0]

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	task, err := tracker.FindTask(users, title)
	if err != nil {
		return e.notFound(err, "Task '%s' not found.", title)
	}

	task.Complete()
	if err := e.store.Save(users); err != nil {
		return err
	}

	e.logger.Info("completed task", "task", title)
	fmt.Fprintf(e.out, "✅ Task '%s' marked as complete.\n", title)
	return nil
}
