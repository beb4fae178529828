// Package assets loads the player model in the background.
//
// The game starts with a placeholder and polls the returned Handle; a
// failed or cancelled load is logged and the placeholder simply stays.
package assets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/gltf"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ErrPending is returned by Handle.Result while the load is in flight.
var ErrPending = errors.New("assets: model still loading")

// Material is a flat color applied to a mesh.
type Material struct {
	Name  string
	Color core.Color
}

var (
	// BodyMaterial covers every mesh not matched by AccentMaterial.
	BodyMaterial = Material{Name: "body", Color: core.ColorDarkGreen}
	// AccentMaterial covers belly, limb and accent meshes.
	AccentMaterial = Material{Name: "accent", Color: core.ColorBrown}
)

var accentKeywords = []string{"accent", "belly", "limb"}

// AssignMaterial picks the material for a mesh by its name.
func AssignMaterial(meshName string) Material {
	name := strings.ToLower(meshName)
	for _, kw := range accentKeywords {
		if strings.Contains(name, kw) {
			return AccentMaterial
		}
	}
	return BodyMaterial
}

// Part is one mesh of a loaded model.
type Part struct {
	Name     string
	Material Material
}

// Model is a loaded player model with materials assigned.
type Model struct {
	Path  string
	Parts []Part
	Scale float64 // Uniform scale applied to the mesh
	Yaw   float64 // Rotation about Y in radians; π/2 faces down the lane
}

// HasAccent reports whether any part uses the accent material.
func (m *Model) HasAccent() bool {
	for _, p := range m.Parts {
		if p.Material == AccentMaterial {
			return true
		}
	}
	return false
}

// decodeFunc reads mesh names from a model file.
type decodeFunc func(path string) ([]string, error)

// decodeGLTF opens a .gltf or .glb file and returns its mesh names.
func decodeGLTF(path string) ([]string, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Meshes))
	for _, m := range doc.Meshes {
		names = append(names, m.Name)
	}
	return names, nil
}

// Handle is a cancellable, single-assignment result of a background load.
type Handle struct {
	path   string
	done   chan struct{}
	cancel context.CancelFunc

	mu    sync.Mutex
	model *Model
	err   error
}

// Load starts loading the model at path and returns immediately.
// The outcome is logged before Done is closed: Info on success, Error on failure.
func Load(ctx context.Context, path string, logger *log.Logger) *Handle {
	return load(ctx, path, logger, decodeGLTF)
}

func load(ctx context.Context, path string, logger *log.Logger, decode decodeFunc) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		path:   path,
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		model, err := h.run(ctx, decode)
		if err != nil {
			logger.Error("error loading model, keeping placeholder", "path", path, "error", err)
		} else {
			logger.Info("model loaded", "path", path, "parts", len(model.Parts))
		}
		h.finish(model, err)
	}()

	return h
}

func (h *Handle) run(ctx context.Context, decode decodeFunc) (*Model, error) {
	type decoded struct {
		names []string
		err   error
	}
	out := make(chan decoded, 1)
	go func() {
		names, err := decode(h.path)
		out <- decoded{names, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("assets: load %s: %w", h.path, ctx.Err())
	case d := <-out:
		if d.err != nil {
			return nil, fmt.Errorf("assets: load %s: %w", h.path, d.err)
		}
		if len(d.names) == 0 {
			return nil, fmt.Errorf("assets: load %s: model has no meshes", h.path)
		}
		m := &Model{
			Path:  h.path,
			Parts: make([]Part, 0, len(d.names)),
			Scale: 0.8,
			Yaw:   math.Pi / 2,
		}
		for _, name := range d.names {
			m.Parts = append(m.Parts, Part{Name: name, Material: AssignMaterial(name)})
		}
		return m, nil
	}
}

func (h *Handle) finish(m *Model, err error) {
	h.mu.Lock()
	h.model, h.err = m, err
	h.mu.Unlock()
	close(h.done)
}

// Path returns the file being loaded.
func (h *Handle) Path() string {
	return h.path
}

// Done is closed when the load has finished, successfully or not.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Result returns the loaded model. Before Done is closed it returns ErrPending.
func (h *Handle) Result() (*Model, error) {
	select {
	case <-h.done:
	default:
		return nil, ErrPending
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.model, h.err
}

// Cancel aborts a load in flight. It is safe to call at any time.
func (h *Handle) Cancel() {
	h.cancel()
}
