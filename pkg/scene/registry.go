package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Name used on the command line
	Description string // One-line description
	build       func() *Scene
}

var builtinScenes = []SceneInfo{
	{Name: "materials", Description: "One sphere per material on a ground sphere", build: NewMaterialsScene},
	{Name: "helix", Description: "Phong spheres in a helix around a metal sphere", build: NewHelixScene},
	{Name: "platonic", Description: "Eight-triangle solid on a tilted base plane", build: NewPlatonicScene},
	{Name: "triangle", Description: "A single triangle seen at an angle", build: NewTriangleScene},
	{Name: "plane", Description: "A single infinite gray plane", build: NewPlaneScene},
	{Name: "gradient", Description: "Empty scene showing the sky gradient", build: NewGradientScene},
	{Name: "normals", Description: "One sphere; render with --integrator normals", build: NewNormalsScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of the built-in scenes, sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.Name
	}
	return names
}

// Lookup builds a fresh instance of the named built-in scene
func Lookup(name string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name == name {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Recommended returns the sampling config a scene ships with
func (info SceneInfo) Recommended() SamplingConfig {
	return info.build().SamplingConfig
}
