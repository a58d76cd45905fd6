package server

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/df07/go-raycore/pkg/material"
	"github.com/df07/go-raycore/pkg/renderer"
	"github.com/df07/go-raycore/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	Point      [3]float64             `json:"point"`
	Normal     [3]float64             `json:"normal"`
	Distance   float64                `json:"distance"`
	T          float64                `json:"t"`
	Color      string                 `json:"color"`
	Vertices   [3][3]float64          `json:"vertices"`
	Properties map[string]interface{} `json:"properties"`
}

// materialProperties reports a material's coefficients
func materialProperties(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"albedo":       [3]float64{mat.Color.R, mat.Color.G, mat.Color.B},
		"absorption":   mat.Absorption,
		"reflection":   mat.Reflection,
		"transmission": mat.Transmission,
		"diffusion":    mat.Diffusion,
	}
}

// handleInspect casts the camera ray through one pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	query := r.URL.Query()
	x, err := parseRequiredInt(query, "x", req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseRequiredInt(query, "y", req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sc, x, y))
}

// inspectPixel finds the closest triangle under pixel (x, y)
func inspectPixel(sc *scene.Scene, x, y int) InspectResponse {
	ray := renderer.CameraRay(sc.GetCamera(), sc.GetDimensions(), x, y)
	hit, ok := sc.Intersect(ray, scene.DefaultTMin)
	if !ok {
		return InspectResponse{Hit: false}
	}

	tri := hit.Triangle
	n := hit.Normal(ray)
	if unit, err := n.Normalize(); err == nil {
		n = unit
	}
	rgba := hit.Color.ToRGBA()
	return InspectResponse{
		Hit:      true,
		Point:    [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:   [3]float64{n.X, n.Y, n.Z},
		Distance: hit.Distance,
		T:        hit.T,
		Color:    fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B),
		Vertices: [3][3]float64{
			{tri.A.X, tri.A.Y, tri.A.Z},
			{tri.B.X, tri.B.Y, tri.B.Z},
			{tri.C.X, tri.C.Y, tri.C.Z},
		},
		Properties: materialProperties(tri.Material),
	}
}

// parseRequiredInt parses a mandatory integer parameter in [0, max]
func parseRequiredInt(values url.Values, key string, max int) (int, error) {
	if values.Get(key) == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	return parseIntParam(values, key, 0, 0, max)
}
