package assets

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("load did not finish")
	}
}

func TestAssignMaterial(t *testing.T) {
	tests := []struct {
		mesh string
		want Material
	}{
		{"Body", BodyMaterial},
		{"Head", BodyMaterial},
		{"Belly", AccentMaterial},
		{"left_LIMB.001", AccentMaterial},
		{"ScaleAccent", AccentMaterial},
		{"", BodyMaterial},
	}

	for _, tc := range tests {
		t.Run(tc.mesh, func(t *testing.T) {
			if got := AssignMaterial(tc.mesh); got != tc.want {
				t.Errorf("AssignMaterial(%q) = %v, expected %v", tc.mesh, got, tc.want)
			}
		})
	}
}

func TestLoadSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	decode := func(string) ([]string, error) {
		return []string{"Body", "Belly"}, nil
	}
	h := load(context.Background(), "dino.glb", logger, decode)
	waitDone(t, h)

	m, err := h.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if len(m.Parts) != 2 || !m.HasAccent() {
		t.Errorf("unexpected parts: %+v", m.Parts)
	}
	if m.Scale != 0.8 {
		t.Errorf("Scale = %v, expected 0.8", m.Scale)
	}
	if !strings.Contains(buf.String(), "model loaded") {
		t.Errorf("success was not logged: %q", buf.String())
	}
}

func TestLoadFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	boom := errors.New("corrupt header")
	h := load(context.Background(), "dino.glb", logger, func(string) ([]string, error) {
		return nil, boom
	})
	waitDone(t, h)

	m, err := h.Result()
	if m != nil || !errors.Is(err, boom) {
		t.Errorf("Result() = %v, %v; expected nil, %v", m, err, boom)
	}
	if !strings.Contains(buf.String(), "keeping placeholder") {
		t.Errorf("failure was not logged: %q", buf.String())
	}
}

func TestLoadEmptyModel(t *testing.T) {
	h := load(context.Background(), "empty.glb", log.New(&bytes.Buffer{}), func(string) ([]string, error) {
		return nil, nil
	})
	waitDone(t, h)

	if _, err := h.Result(); err == nil {
		t.Error("a model without meshes should fail")
	}
}

func TestLoadPendingAndCancel(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	h := load(context.Background(), "slow.glb", log.New(&bytes.Buffer{}), func(string) ([]string, error) {
		<-release
		return []string{"Body"}, nil
	})

	if _, err := h.Result(); !errors.Is(err, ErrPending) {
		t.Fatalf("Result() before completion = %v, expected ErrPending", err)
	}

	h.Cancel()
	waitDone(t, h)

	if _, err := h.Result(); !errors.Is(err, context.Canceled) {
		t.Errorf("Result() after Cancel = %v, expected context.Canceled", err)
	}
}

func TestLoadGLTFFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dino.gltf")
	doc := `{
		"asset": {"version": "2.0"},
		"meshes": [
			{"name": "Body", "primitives": [{"attributes": {}}]},
			{"name": "Belly", "primitives": [{"attributes": {}}]}
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	h := Load(context.Background(), path, log.New(&bytes.Buffer{}))
	waitDone(t, h)

	m, err := h.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if len(m.Parts) != 2 || m.Parts[1].Material != AccentMaterial {
		t.Errorf("unexpected parts: %+v", m.Parts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	h := Load(context.Background(), filepath.Join(t.TempDir(), "nope.glb"), log.New(&bytes.Buffer{}))
	waitDone(t, h)

	if _, err := h.Result(); err == nil {
		t.Error("missing file should fail")
	}
}
