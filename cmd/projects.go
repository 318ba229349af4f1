package cmd

import (
	"context"
	"fmt"

	"github.com/nibzard/projman/internal/tracker"
)

// addProjectCommand appends a project to the first user with the given name.
func addProjectCommand(_ context.Context, e *env, args []string) error {
	rest, err := e.parseArgs(lookupCommand("add_project"), nil, args)
	if err != nil {
		return err
	}
	userName, projectName := rest[0], rest[1]

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	user, err := tracker.FindUser(users, userName)
	if err != nil {
		return e.notFound(err, "User '%s' not found.", userName)
	}

	user.AddProject(tracker.NewProject(projectName))
	if err := e.store.Save(users); err != nil {
		return err
	}

	e.logger.Info("added project", "user", userName, "project", projectName)
	fmt.Fprintf(e.out, "📁 Project '%s' added for user '%s'.\n", projectName, userName)
	return nil
}

// listProjectsCommand prints the projects of the first user with the given name.
func listProjectsCommand(_ context.Context, e *env, args []string) error {
	rest, err := e.parseArgs(lookupCommand("list_projects"), nil, args)
	if err != nil {
		return err
	}
	userName := rest[0]

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	user, err := tracker.FindUser(users, userName)
	if err != nil {
		return e.notFound(err, "User '%s' not found.", userName)
	}

	if len(user.Projects) == 0 {
		fmt.Fprintf(e.out, "User '%s' has no projects.\n", userName)
		return nil
	}
	for name := range user.ListProjects() {
		fmt.Fprintf(e.out, "📂 %s\n", name)
	}
	return nil
}
