package store

import (
	"errors"
	"fmt"
	"testing"
)

func openBoth(t *testing.T) map[string]Store {
	t.Helper()

	out := make(map[string]Store)

	for _, backend := range []string{BackendBolt, BackendSQLite} {
		s, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("Open(%q) error = %v", backend, err)
		}

		t.Cleanup(func() {
			if err := s.Close(); err != nil {
				t.Logf("failed to close %s store: %v", backend, err)
			}
		})

		out[backend] = s
	}

	return out
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("postgres", t.TempDir())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(postgres) error = %v, want ErrUnknownBackend", err)
	}
}

func TestStore_Ping(t *testing.T) {
	for name, s := range openBoth(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Ping(); err != nil {
				t.Errorf("Ping() error = %v, want nil", err)
			}
		})
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range openBoth(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Get("missing")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			if v != nil {
				t.Errorf("Get() = %q, want nil", v)
			}
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	for name, s := range openBoth(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Put("k", []byte(`[1]`)); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			if err := s.Put("k", []byte(`[1,2]`)); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			v, err := s.Get("k")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			if string(v) != `[1,2]` {
				t.Errorf("Get() = %q, want %q", v, `[1,2]`)
			}
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	for name, s := range openBoth(t) {
		t.Run(name, func(t *testing.T) {
			for i := range 3 {
				if err := s.Put(fmt.Sprintf("key-%d", i), []byte(fmt.Sprintf("value-%d", i))); err != nil {
					t.Fatalf("Put() error = %v", err)
				}
			}

			v, err := s.Get("key-1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			if string(v) != "value-1" {
				t.Errorf("Get(key-1) = %q, want %q", v, "value-1")
			}
		})
	}
}

func TestBolt_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendBolt, dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := s.Put("slot", []byte("persisted")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(BackendBolt, dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	v, err := s.Get("slot")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if string(v) != "persisted" {
		t.Errorf("Get() after reopen = %q, want %q", v, "persisted")
	}
}

func TestBolt_GetReturnsCopy(t *testing.T) {
	db, err := NewBolt(t.TempDir() + "/copy.bolt")
	if err != nil {
		t.Fatalf("NewBolt() error = %v", err)
	}
	defer db.Close()

	if err := db.Put("k", []byte("abc")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	v, _ := db.Get("k")
	v[0] = 'z'

	again, _ := db.Get("k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through Get result: %q", again)
	}
}
