package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Request limits for image size
const (
	minImageSize = 1
	maxImageSize = 4000
)

// Server handles web requests for the raycaster
type Server struct {
	config *config.Config
	mux    *http.ServeMux
}

// NewServer creates a new web server
func NewServer(cfg *config.Config) *Server {
	s := &Server{config: cfg, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// SceneRequest holds the parameters shared by render and inspect requests
type SceneRequest struct {
	Scene   string `json:"scene"`   // Scene name or scene file name
	Width   int    `json:"width"`   // Image width (0 = scene default)
	Height  int    `json:"height"`  // Image height (0 = scene default)
	Workers int    `json:"workers"` // Render workers (0 = CPU count)
}

// Handler returns the HTTP handler serving all endpoints
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListScenes(s.config.ScenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseSceneRequest parses the scene selection and image size parameters
func (s *Server) parseSceneRequest(r *http.Request) (*SceneRequest, error) {
	query := r.URL.Query()
	req := &SceneRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	return req, nil
}

// loadScene resolves the requested scene and applies any size override.
// Only names are accepted; paths outside the scenes directory are rejected.
func (s *Server) loadScene(req *SceneRequest) (*scene.Scene, error) {
	name := strings.TrimSuffix(req.Scene, ".json")
	if name != filepath.Base(name) || name == ".." {
		return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, req.Scene)
	}

	sceneObj, err := scene.Resolve(name, s.config.ScenesDir)
	if err != nil {
		return nil, err
	}

	if req.Width == 0 && req.Height == 0 {
		return sceneObj, nil
	}
	width, height := sceneObj.Width(), sceneObj.Height()
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}
	return sceneObj.Resize(width, height)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
