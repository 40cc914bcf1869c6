package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// progressEvents is roughly how many progress events a streamed render sends
const progressEvents = 50

// SSEEvent is a single server-sent event
type SSEEvent struct {
	Type string // "console", "progress", "complete" or "error"
	Data string // JSON-encoded data
}

// ProgressUpdate reports completed scanlines
type ProgressUpdate struct {
	RowsCompleted int   `json:"rowsCompleted"`
	TotalRows     int   `json:"totalRows"`
	ElapsedMs     int64 `json:"elapsedMs"`
}

// CompleteUpdate carries the finished image and its statistics
type CompleteUpdate struct {
	ImageData      string `json:"imageData"` // Base64 encoded PNG
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	TotalPixels    int    `json:"totalPixels"`
	Hits           int    `json:"hits"`
	Misses         int    `json:"misses"`
	NumWorkers     int    `json:"numWorkers"`
	PrimitiveCount int    `json:"primitiveCount"`
	ElapsedMs      int64  `json:"elapsedMs"`
}

// renderResult is what the render goroutine hands back to the handler
type renderResult struct {
	stats renderer.RenderStats
	err   error
}

// handleRender renders a scene and returns either a PNG or an SSE stream
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSceneRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "sse" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "format must be png or sse"})
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	if format == "png" {
		s.renderPNG(w, r.Context(), sceneObj, req)
		return
	}
	s.renderSSE(w, r.Context(), sceneObj, req)
}

// renderPNG renders synchronously and writes the encoded image
func (s *Server) renderPNG(w http.ResponseWriter, ctx context.Context, sceneObj *scene.Scene, req *SceneRequest) {
	logger := NewWebLogger(newRenderID(), nil)
	canvas := output.NewCanvas(sceneObj.Width(), sceneObj.Height())

	rt := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{NumWorkers: req.Workers}, logger)
	if _, err := rt.Render(ctx, canvas, nil); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Render failed: " + err.Error()})
		return
	}

	data, err := canvas.Encode("render.png")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// renderSSE streams console lines and progress while rendering, then the image.
// The render runs in its own goroutine; this goroutine is the only writer to w.
func (s *Server) renderSSE(w http.ResponseWriter, ctx context.Context, sceneObj *scene.Scene, req *SceneRequest) {
	setSSEHeaders(w)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	progressChan := make(chan ProgressUpdate, progressEvents+1)
	done := make(chan renderResult, 1)

	logger := NewWebLogger(newRenderID(), consoleChan)
	canvas := output.NewCanvas(sceneObj.Width(), sceneObj.Height())
	rt := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{NumWorkers: req.Workers}, logger)

	startTime := time.Now()
	totalRows := sceneObj.Height()
	batch := max(1, totalRows/progressEvents)
	progress := func(rowsCompleted, totalRows int) {
		if rowsCompleted%batch != 0 && rowsCompleted != totalRows {
			return
		}
		select {
		case progressChan <- ProgressUpdate{
			RowsCompleted: rowsCompleted,
			TotalRows:     totalRows,
			ElapsedMs:     time.Since(startTime).Milliseconds(),
		}:
		default:
			// Writer is behind; the next update supersedes this one
		}
	}

	go func() {
		stats, err := rt.Render(ctx, canvas, progress)
		done <- renderResult{stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			if !writeSSEJSON(w, "console", msg) {
				return
			}

		case update := <-progressChan:
			if !writeSSEJSON(w, "progress", update) {
				return
			}

		case result := <-done:
			s.finishSSE(w, consoleChan, progressChan, canvas, sceneObj, result, startTime)
			return

		case <-ctx.Done():
			// Client disconnected; the render sees the same context and stops
			return
		}
	}
}

// finishSSE flushes queued events and sends the final complete or error event
func (s *Server) finishSSE(w http.ResponseWriter, consoleChan chan ConsoleMessage, progressChan chan ProgressUpdate,
	canvas *output.Canvas, sceneObj *scene.Scene, result renderResult, startTime time.Time) {

	// The render goroutine has returned, so nothing else is sent on these channels
	for drained := false; !drained; {
		select {
		case msg := <-consoleChan:
			writeSSEJSON(w, "console", msg)
		case update := <-progressChan:
			writeSSEJSON(w, "progress", update)
		default:
			drained = true
		}
	}

	if result.err != nil {
		writeSSE(w, "error", fmt.Sprintf("Render failed: %v", result.err))
		return
	}

	data, err := canvas.Encode("render.png")
	if err != nil {
		writeSSE(w, "error", fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	writeSSEJSON(w, "complete", CompleteUpdate{
		ImageData:      base64.StdEncoding.EncodeToString(data),
		Width:          sceneObj.Width(),
		Height:         sceneObj.Height(),
		TotalPixels:    result.stats.TotalPixels,
		Hits:           result.stats.Hits,
		Misses:         result.stats.Misses,
		NumWorkers:     result.stats.NumWorkers,
		PrimitiveCount: sceneObj.GetPrimitiveCount(),
		ElapsedMs:      time.Since(startTime).Milliseconds(),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEJSON marshals v and writes it as an event. It returns false once
// the client can no longer be written to.
func writeSSEJSON(w http.ResponseWriter, event string, v interface{}) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", event, err)
		return true
	}
	return writeSSE(w, event, string(data))
}

// writeSSE writes a single event and flushes it
func writeSSE(w http.ResponseWriter, event, data string) bool {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return false
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return true
}

func newRenderID() string {
	return fmt.Sprintf("render-%d", time.Now().UnixNano())
}
