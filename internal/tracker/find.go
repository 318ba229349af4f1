package tracker

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// First returns the first element of seq for which match returns true.
func First[T any](seq iter.Seq[*T], match func(*T) bool) (*T, bool) {
	for v := range seq {
		if match(v) {
			return v, true
		}
	}
	return nil, false
}

// All yields a pointer to each element of items in order, so callers can
// mutate the element in place.
func All[T any](items []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range items {
			if !yield(&items[i]) {
				return
			}
		}
	}
}

// Projects yields every project of every user, users outer.
func Projects(users []User) iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for u := range All(users) {
			for p := range All(u.Projects) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Tasks yields every task of every project of every user.
func Tasks(users []User) iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for p := range Projects(users) {
			for t := range All(p.Tasks) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// FindUser returns the first user named name.
func FindUser(users []User, name string) (*User, error) {
	u, ok := First(All(users), func(u *User) bool { return u.Name == name })
	if !ok {
		return nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return u, nil
}

// FindProject returns the first project named name across all users.
func FindProject(users []User, name string) (*Project, error) {
	p, ok := First(Projects(users), func(p *Project) bool { return p.Name == name })
	if !ok {
		return nil, fmt.Errorf("project %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// FindUserProject returns the first project named name owned by the first
// user named userName.
func FindUserProject(users []User, userName, name string) (*Project, error) {
	u, err := FindUser(users, userName)
	if err != nil {
		return nil, err
	}
	p, ok := First(All(u.Projects), func(p *Project) bool { return p.Name == name })
	if !ok {
		return nil, fmt.Errorf("project %q of user %q: %w", name, userName, ErrNotFound)
	}
	return p, nil
}

// FindTask returns the first task titled title across all users and projects.
func FindTask(users []User, title string) (*Task, error) {
	t, ok := First(Tasks(users), func(t *Task) bool { return t.Title == title })
	if !ok {
		return nil, fmt.Errorf("task %q: %w", title, ErrNotFound)
	}
	return t, nil
}
