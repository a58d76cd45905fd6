package loaders

import (
	"fmt"
	"log"
	"time"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/material"
)

// MeshOptions controls how a mesh file is turned into triangles
type MeshOptions struct {
	Material    material.Material // Material assigned to every triangle
	FitUnitCube bool              // Scale and center the mesh into [-1, 1]³
}

// LoadMesh reads an STL, OBJ, PLY or 3DS file and converts it to triangles.
// Faces whose vertices do not span a plane are dropped.
func LoadMesh(path string, opts MeshOptions) ([]geometry.Triangle, error) {
	startTime := time.Now()

	mesh, err := fauxgl.LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
	}
	if opts.FitUnitCube {
		mesh.BiUnitCube()
	}

	triangles, dropped := TrianglesFromMesh(mesh, opts.Material)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %s has no usable triangles", path)
	}

	log.Printf("loaders: %s: %d triangles (%d degenerate dropped) in %v",
		path, len(triangles), dropped, time.Since(startTime))
	return triangles, nil
}

// TrianglesFromMesh converts a fauxgl mesh, returning the triangles and the number of degenerate faces skipped
func TrianglesFromMesh(mesh *fauxgl.Mesh, mat material.Material) ([]geometry.Triangle, int) {
	triangles := make([]geometry.Triangle, 0, len(mesh.Triangles))
	dropped := 0
	for _, t := range mesh.Triangles {
		tri, err := geometry.NewTriangleFromVertices(mat,
			toVec3(t.V1.Position), toVec3(t.V2.Position), toVec3(t.V3.Position))
		if err != nil {
			dropped++
			continue
		}
		triangles = append(triangles, tri)
	}
	return triangles, dropped
}

func toVec3(v fauxgl.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
