package cmd

import (
	"context"
	"fmt"

	"github.com/nibzard/projman/internal/tracker"
)

// createUserCommand appends a new user. Duplicate names are allowed.
func createUserCommand(_ context.Context, e *env, args []string) error {
	rest, err := e.parseArgs(lookupCommand("create_user"), nil, args)
	if err != nil {
		return err
	}
	name := rest[0]

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	users = append(users, tracker.NewUser(name))
	if err := e.store.Save(users); err != nil {
		return err
	}

	e.logger.Info("created user", "user", name)
	fmt.Fprintf(e.out, "👤 User '%s' created successfully!\n", name)
	return nil
}

// listUsersCommand prints every user in stored order.
func listUsersCommand(_ context.Context, e *env, args []string) error {
	if _, err := e.parseArgs(lookupCommand("list_users"), nil, args); err != nil {
		return err
	}

	users, err := e.store.Load()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(e.out, "No users found.")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(e.out, "👤 %s\n", u.Name)
	}
	return nil
}
