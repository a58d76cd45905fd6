package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/output"
	"github.com/df07/go-raycore/pkg/renderer"
	"github.com/df07/go-raycore/pkg/scene"
)

// Server serves preview renders over HTTP
type Server struct {
	port     int
	sceneDir string
}

// RenderRequest holds the parsed parameters shared by render and inspect requests
type RenderRequest struct {
	Scene   string
	Width   int
	Height  int
	Ambient float64
	Format  output.Format
}

// NewServer creates a server that lists mesh scenes from the "scenes" directory
func NewServer(port int) *Server {
	return &Server{
		port:     port,
		sceneDir: "scenes",
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and meshes found in the scene directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.sceneDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders a scene and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.DefaultConfig()
	config.Ambient = req.Ambient
	img, stats, err := renderer.NewRaytracer(sc, config).Render(r.Context())
	if err != nil {
		log.Printf("Render of %s aborted: %v", req.Scene, err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	data, err := output.EncodeBytes(img, req.Format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Rendered %s %dx%d in %v", req.Scene, req.Width, req.Height, stats.Duration.Round(time.Millisecond))
	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Render-Duration", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// parseRenderRequest parses URL parameters into a RenderRequest
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()

	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: output.FormatPNG,
	}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, 2000); err != nil {
		return nil, err
	}
	if req.Ambient, err = parseFloatParam(query, "ambient", renderer.DefaultConfig().Ambient, 0, 1); err != nil {
		return nil, err
	}
	if f := query.Get("format"); f != "" {
		if req.Format, err = output.ParseFormat(f); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	str := values.Get(key)
	if str == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, str)
	}
	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return val, nil
}

// parseFloatParam parses a float parameter with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	str := values.Get(key)
	if str == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, str)
	}
	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}
	return val, nil
}

// createScene builds and validates the requested scene. Only builtin scenes and
// meshes inside the scene directory are reachable.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	name, err := scene.ResolveID(req.Scene, s.sceneDir)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Create(name, geometry.NewDimensions(req.Width, req.Height))
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
