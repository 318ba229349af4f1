package tracker

import (
	"errors"
	"fmt"
)

// ErrMalformed reports data that does not have the expected record shape.
var ErrMalformed = errors.New("malformed data")

// DecodeError describes a record that could not be decoded.
type DecodeError struct {
	Path string // JSON path to the offending value, e.g. [0].projects[1].name
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformed for every DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformed
}

// TaskRecord is the on-disk form of a Task.
type TaskRecord struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ProjectRecord is the on-disk form of a Project.
type ProjectRecord struct {
	Name  string       `json:"name"`
	Tasks []TaskRecord `json:"tasks"`
}

// UserRecord is the on-disk form of a User.
type UserRecord struct {
	Name     string          `json:"name"`
	Projects []ProjectRecord `json:"projects"`
}

// EncodeTask converts a task to its record.
func EncodeTask(t Task) TaskRecord {
	return TaskRecord{Title: t.Title, Completed: t.Completed}
}

// EncodeProject converts a project and its tasks to a record.
func EncodeProject(p Project) ProjectRecord {
	tasks := make([]TaskRecord, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, EncodeTask(t))
	}
	return ProjectRecord{Name: p.Name, Tasks: tasks}
}

// EncodeUser converts a user and its projects to a record.
func EncodeUser(u User) UserRecord {
	projects := make([]ProjectRecord, 0, len(u.Projects))
	for _, p := range u.Projects {
		projects = append(projects, EncodeProject(p))
	}
	return UserRecord{Name: u.Name, Projects: projects}
}

// EncodeUsers converts the whole user collection. The result is never nil,
// so an empty collection encodes as [].
func EncodeUsers(users []User) []UserRecord {
	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, EncodeUser(u))
	}
	return records
}

// DecodeTask decodes a task record from a generic JSON value.
func DecodeTask(v any) (Task, error) {
	return decodeTask(v, "")
}

// DecodeProject decodes a project record from a generic JSON value.
func DecodeProject(v any) (Project, error) {
	return decodeProject(v, "")
}

// DecodeUser decodes a user record from a generic JSON value.
func DecodeUser(v any) (User, error) {
	return decodeUser(v, "")
}

// DecodeUsers decodes the top-level user array from a generic JSON value.
func DecodeUsers(v any) ([]User, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{Err: fmt.Errorf("expected array, got %s", typeName(v))}
	}
	users := make([]User, 0, len(items))
	for i, item := range items {
		u, err := decodeUser(item, fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func decodeTask(v any, path string) (Task, error) {
	obj, err := asObject(v, path)
	if err != nil {
		return Task{}, err
	}
	title, err := stringField(obj, "title", path)
	if err != nil {
		return Task{}, err
	}
	completed, err := boolField(obj, "completed", path)
	if err != nil {
		return Task{}, err
	}
	return Task{Title: title, Completed: completed}, nil
}

func decodeProject(v any, path string) (Project, error) {
	obj, err := asObject(v, path)
	if err != nil {
		return Project{}, err
	}
	name, err := stringField(obj, "name", path)
	if err != nil {
		return Project{}, err
	}
	items, err := arrayField(obj, "tasks", path)
	if err != nil {
		return Project{}, err
	}
	p := NewProject(name)
	for i, item := range items {
		t, err := decodeTask(item, fmt.Sprintf("%s[%d]", join(path, "tasks"), i))
		if err != nil {
			return Project{}, err
		}
		p.Tasks = append(p.Tasks, t)
	}
	return p, nil
}

func decodeUser(v any, path string) (User, error) {
	obj, err := asObject(v, path)
	if err != nil {
		return User{}, err
	}
	name, err := stringField(obj, "name", path)
	if err != nil {
		return User{}, err
	}
	items, err := arrayField(obj, "projects", path)
	if err != nil {
		return User{}, err
	}
	u := NewUser(name)
	for i, item := range items {
		p, err := decodeProject(item, fmt.Sprintf("%s[%d]", join(path, "projects"), i))
		if err != nil {
			return User{}, err
		}
		u.Projects = append(u.Projects, p)
	}
	return u, nil
}

func asObject(v any, path string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("expected object, got %s", typeName(v))}
	}
	return obj, nil
}

func field(obj map[string]any, key, path string) (any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, &DecodeError{Path: join(path, key), Err: errors.New("missing required field")}
	}
	return v, nil
}

func stringField(obj map[string]any, key, path string) (string, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Path: join(path, key), Err: fmt.Errorf("expected string, got %s", typeName(v))}
	}
	return s, nil
}

func boolField(obj map[string]any, key, path string) (bool, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &DecodeError{Path: join(path, key), Err: fmt.Errorf("expected boolean, got %s", typeName(v))}
	}
	return b, nil
}

func arrayField(obj map[string]any, key, path string) ([]any, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{Path: join(path, key), Err: fmt.Errorf("expected array, got %s", typeName(v))}
	}
	return items, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
