package canvas

import (
	"slices"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	const name = "test-registry-mock"
	Register(name, func() Backend { return &mockBackend{} })
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false", name)
	}
	b, err := NewBackend(name)
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if _, ok := b.(*mockBackend); !ok {
		t.Errorf("NewBackend() = %T, want *mockBackend", b)
	}
	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, missing %q", Backends(), name)
	}

	c, err := NewNamed(name, 10, 10)
	if err != nil || c.Width() != 10 {
		t.Errorf("NewNamed() = %v, %v", c, err)
	}
}

func TestRegistryUnknown(t *testing.T) {
	if _, err := NewBackend("no-such-backend"); err == nil {
		t.Error("NewBackend(unknown) error = nil")
	}
	if _, err := NewNamed("no-such-backend", 1, 1); err == nil {
		t.Error("NewNamed(unknown) error = nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustBackend(unknown) did not panic")
		}
	}()
	MustBackend("no-such-backend")
}

func TestRegistryDuplicatePanics(t *testing.T) {
	const name = "test-registry-dup"
	Register(name, func() Backend { return &mockBackend{} })
	defer Unregister(name)

	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register(name, func() Backend { return &mockBackend{} })
}

func TestRegistryUnregister(t *testing.T) {
	const name = "test-registry-unregister"
	before := Count()
	Register(name, func() Backend { return &mockBackend{} })
	if Count() != before+1 {
		t.Errorf("Count() = %d, want %d", Count(), before+1)
	}
	Unregister(name)
	Unregister(name)
	if IsRegistered(name) || Count() != before {
		t.Errorf("after Unregister: registered=%v count=%d", IsRegistered(name), Count())
	}
}
