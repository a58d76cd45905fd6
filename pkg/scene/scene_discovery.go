package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raycore/pkg/geometry"
)

// MeshIDPrefix marks scene IDs that name a mesh file inside a scene directory
const MeshIDPrefix = "mesh:"

// ErrUnknownScene is returned for scene IDs that do not name a builtin or a listed mesh
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a scene that Create can build. ID is the value to pass to ResolveID.
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`     // "builtin" or "mesh"
	FilePath    string `json:"filePath"` // mesh type only
}

// MeshExtensions lists the file extensions LoadMesh understands
var MeshExtensions = []string{".stl", ".obj", ".ply", ".3ds"}

var builtinScenes = []SceneInfo{
	{ID: "default", Name: "default", Description: "Ground, pyramid and a tilted metal panel", Type: "builtin"},
	{ID: "pyramid", Name: "pyramid", Description: "A single pyramid turned 45 degrees", Type: "builtin"},
}

// IsMeshPath reports whether name looks like a mesh file path
func IsMeshPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range MeshExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListScenes returns the builtin scenes followed by mesh files found in dir.
// A missing dir is not an error.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := append([]SceneInfo(nil), builtinScenes...)
	if dir == "" {
		return scenes, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return scenes, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var meshes []SceneInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsMeshPath(entry.Name()) {
			continue
		}
		meshes = append(meshes, SceneInfo{
			ID:          MeshIDPrefix + entry.Name(),
			Name:        strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Description: "Mesh " + entry.Name(),
			Type:        "mesh",
			FilePath:    filepath.Join(dir, entry.Name()),
		})
	}
	sort.Slice(meshes, func(i, j int) bool { return meshes[i].Name < meshes[j].Name })

	return append(scenes, meshes...), nil
}

// ResolveID maps a scene ID to a name Create accepts. Builtin IDs pass through;
// mesh IDs must name a mesh file directly inside dir. Anything else, including
// plain file paths, is rejected.
func ResolveID(id, dir string) (string, error) {
	for _, b := range builtinScenes {
		if id == b.ID {
			return id, nil
		}
	}

	file, ok := strings.CutPrefix(id, MeshIDPrefix)
	if !ok || file != filepath.Base(file) || !IsMeshPath(file) {
		return "", fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	path := filepath.Join(dir, file)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w %q: no such mesh in %s", ErrUnknownScene, id, dir)
	}
	return path, nil
}

// Create builds a scene by builtin name or mesh file path
func Create(name string, dims geometry.Dimensions) (*Scene, error) {
	switch {
	case name == "default":
		return NewDefaultScene(dims), nil
	case name == "pyramid":
		return NewPyramidScene(dims), nil
	case IsMeshPath(name):
		return NewMeshScene(name, dims)
	case name == "":
		return nil, fmt.Errorf("scene name is empty")
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
}
