package material

import (
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-cube-raytracer/pkg/core"
)

const (
	// ErrTypeMaterialNotFound is the error type returned when a name is not registered.
	ErrTypeMaterialNotFound = "material-not-found"

	// ErrTypeMaterialExists is the error type returned when a name is registered twice.
	ErrTypeMaterialExists = "material-exists"
)

// Library is a scene-owned table of named materials. Shapes hold the returned
// references, so one material is shared by every shape that names it.
type Library struct {
	materials map[string]core.Material
}

// NewLibrary creates an empty library
func NewLibrary() *Library {
	return &Library{materials: make(map[string]core.Material)}
}

// Register adds a material under its name
func (l *Library) Register(m core.Material) error {
	if m.Name() == "" {
		return errors.New("material name is empty")
	}
	if _, ok := l.materials[m.Name()]; ok {
		return errors.New("material already registered").
			WithType(ErrTypeMaterialExists).
			WithTag("name", m.Name())
	}
	l.materials[m.Name()] = m
	return nil
}

// Get returns the material registered under name
func (l *Library) Get(name string) (core.Material, error) {
	m, ok := l.materials[name]
	if !ok {
		return nil, errors.New("material not found").
			WithType(ErrTypeMaterialNotFound).
			WithTag("name", name)
	}
	return m, nil
}

// Names returns the registered names in sorted order
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.materials))
	for name := range l.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered materials
func (l *Library) Len() int {
	return len(l.materials)
}
