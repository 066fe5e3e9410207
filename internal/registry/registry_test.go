package registry

import (
	"strings"
	"testing"
)

type stubFrontend struct{ name string }

func (s stubFrontend) Name() string                 { return s.name }
func (s stubFrontend) Description() string          { return "stub " + s.name }
func (s stubFrontend) Run(game Game, env Env) error { return nil }

func register(t *testing.T, name string) {
	t.Helper()
	Register(name, func() Frontend { return stubFrontend{name: name} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, name)
		delete(descriptions, name)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test_b")
	register(t, "test_a")

	if !Exists("test_a") || !Exists("test_b") {
		t.Fatal("registered frontends should exist")
	}

	f, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.Name() != "test_a" {
		t.Errorf("Create returned %q", f.Name())
	}

	list := List()
	var names []string
	for _, info := range list {
		if strings.HasPrefix(info.Name, "test_") {
			names = append(names, info.Name)
			if info.Description != "stub "+info.Name {
				t.Errorf("description for %s = %q", info.Name, info.Description)
			}
		}
	}
	if len(names) != 2 || names[0] != "test_a" || names[1] != "test_b" {
		t.Errorf("List not sorted: %v", names)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if Exists("no_such_frontend") {
		t.Error("unknown frontend should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "test_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Frontend { return stubFrontend{name: "test_dup"} })
}
