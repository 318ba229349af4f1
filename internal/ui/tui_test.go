package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/projman/internal/tracker"
)

type fakeLoader struct {
	users []tracker.User
	err   error
	calls int
}

func (f *fakeLoader) Load() ([]tracker.User, error) {
	f.calls++
	return f.users, f.err
}

func (f *fakeLoader) Path() string { return "/tmp/data.json" }

func sampleUsers() []tracker.User {
	alice := tracker.NewUser("Alice")
	website := tracker.NewProject("Website")
	website.AddTask(tracker.Task{Title: "Design mockups", Completed: true})
	website.AddTask(tracker.NewTask("Write copy"))
	alice.AddProject(website)
	bob := tracker.NewUser("Bob")
	return []tracker.User{alice, bob}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBuildRows(t *testing.T) {
	rows, c := buildRows(sampleUsers())

	wantTexts := []string{"Alice", "Website", "Design mockups", "Write copy", "Bob"}
	if len(rows) != len(wantTexts) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantTexts))
	}
	for i, want := range wantTexts {
		if rows[i].text != want {
			t.Errorf("row %d: got %q, want %q", i, rows[i].text, want)
		}
	}
	if rows[0].kind != rowUser || rows[1].kind != rowProject || rows[2].kind != rowTask {
		t.Error("unexpected row kinds")
	}
	if !rows[2].completed || rows[3].completed {
		t.Error("unexpected completion flags")
	}
	if c != (counts{users: 2, projects: 1, tasks: 2, done: 1}) {
		t.Errorf("counts: got %+v", c)
	}
}

func TestModelView(t *testing.T) {
	m := newTUIModel(&fakeLoader{users: sampleUsers()})
	m.Init()

	view := m.View()
	for _, want := range []string{"projman", "/tmp/data.json", "Alice", "Website", "[x] Design mockups", "[ ] Write copy", "Bob", "Tasks: 2", "Done: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelEmpty(t *testing.T) {
	m := newTUIModel(&fakeLoader{users: []tracker.User{}})
	m.Init()

	if !strings.Contains(m.View(), "No users found.") {
		t.Errorf("expected empty notice, got:\n%s", m.View())
	}
	m.Update(key("j"))
	if m.cursor != 0 {
		t.Errorf("cursor moved on empty list: %d", m.cursor)
	}
}

func TestModelLoadError(t *testing.T) {
	loader := &fakeLoader{err: errors.New("corrupt data file")}
	m := newTUIModel(loader)
	m.Init()

	view := m.View()
	if !strings.Contains(view, "Error loading data file") || !strings.Contains(view, "corrupt data file") {
		t.Errorf("expected load error in view, got:\n%s", view)
	}

	// A reload after the file is fixed recovers.
	loader.err = nil
	loader.users = sampleUsers()
	m.Update(key("r"))
	if m.loadErr != nil || !strings.Contains(m.View(), "Alice") {
		t.Errorf("reload did not recover:\n%s", m.View())
	}
	if loader.calls != 2 {
		t.Errorf("expected 2 loads, got %d", loader.calls)
	}
}

func TestModelNavigation(t *testing.T) {
	m := newTUIModel(&fakeLoader{users: sampleUsers()})
	m.Init()

	steps := []struct {
		key  string
		want int
	}{
		{"j", 1},
		{"down", 2},
		{"k", 1},
		{"up", 0},
		{"up", 0},
		{"G", 4},
		{"j", 4},
		{"g", 0},
	}
	for _, step := range steps {
		m.Update(key(step.key))
		if m.cursor != step.want {
			t.Fatalf("after %q: cursor = %d, want %d", step.key, m.cursor, step.want)
		}
	}
}

func TestModelScrollWindow(t *testing.T) {
	m := newTUIModel(&fakeLoader{users: sampleUsers()})
	m.Init()
	// Room for exactly two rows.
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 9})

	m.Update(key("G"))
	start, end := m.visibleRange()
	if start != 3 || end != 5 {
		t.Errorf("visible range: got [%d,%d), want [3,5)", start, end)
	}
	view := m.View()
	if strings.Contains(view, "Alice") || !strings.Contains(view, "Bob") {
		t.Errorf("expected scrolled view, got:\n%s", view)
	}

	m.Update(key("g"))
	if start, _ := m.visibleRange(); start != 0 {
		t.Errorf("expected scroll back to top, start = %d", start)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTUIModel(&fakeLoader{users: sampleUsers()})
	m.Init()

	m.Update(key("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help screen")
	}
	m.Update(key("h"))
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help screen to close")
	}
}

func TestModelQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTUIModel(&fakeLoader{})
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%q: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected tea.QuitMsg", k)
		}
	}
}

func TestRunTUIRequiresTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatal("buffer reported as TTY")
	}
}

func TestRunTUIWithInput(t *testing.T) {
	var out bytes.Buffer
	loader := &fakeLoader{users: sampleUsers()}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := RunTUI(ctx, loader,
		WithOutput(&out),
		WithInput(strings.NewReader("q")),
	)
	if err != nil {
		t.Fatalf("RunTUI: %v", err)
	}
	if loader.calls == 0 {
		t.Error("expected the data to be loaded")
	}
}
