package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info:  SceneInfo{ID: "default", Name: "Default Scene", Description: "Single normal-shaded sphere"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "triangles", Name: "Triangles", Description: "Triangles and spheres with flat and normal materials"},
		build: NewTrianglesScene,
	},
	{
		info:  SceneInfo{ID: "parallel", Name: "Parallel Projection", Description: "Orthographic view where distance does not change size"},
		build: NewParallelScene,
	},
	{
		info:  SceneInfo{ID: "overlap", Name: "Overlapping Spheres", Description: "Intersecting spheres resolved by nearest hit"},
		build: NewOverlapScene,
	},
	{
		info:  SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "10x10 grid of rainbow-colored spheres"},
		build: NewSphereGridScene,
	},
}

// BuiltinNames returns the identifiers of all built-in scenes in display order
func BuiltinNames() []string {
	names := make([]string, len(builtinScenes))
	for i, b := range builtinScenes {
		names[i] = b.info.ID
	}
	return names
}

// Builtin creates the built-in scene with the given identifier
func Builtin(name string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
}

// Resolve finds a scene by built-in name, by path to a JSON file, or by the
// name of a JSON file inside scenesDir.
func Resolve(name, scenesDir string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadFile(name)
	}

	if s, err := Builtin(name); err == nil {
		return s, nil
	}

	if scenesDir != "" {
		path := filepath.Join(scenesDir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
}
