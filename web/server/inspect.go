package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	X            int                    `json:"x"`
	Y            int                    `json:"y"`
	RayOrigin    [3]float64             `json:"rayOrigin"`
	RayDirection [3]float64             `json:"rayDirection"`
	ShapeIndex   int                    `json:"shapeIndex"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo returns the material type and its parameters
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case material.Flat:
		properties["color"] = m.Color.Hex()
	case material.Normal:
		properties["description"] = "surface normal mapped to RGB"
	}
	return material.TypeName(mat), properties
}

// extractGeometryInfo returns the geometry type and its parameters
func extractGeometryInfo(g geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := g.(type) {
	case geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
	case geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecArray(geom.V0), vecArray(geom.V1), vecArray(geom.V2)}
		properties["area"] = geom.Area()
	}
	return geometry.TypeName(g), properties
}

// handleInspect casts the ray for one pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSceneRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
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

	if pixelX < 0 || pixelX >= sceneObj.Width() || pixelY < 0 || pixelY >= sceneObj.Height() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}

// inspectPixel casts the ray through a pixel centre and describes the nearest hit
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	rt := renderer.NewRaytracer(sceneObj, renderer.DefaultRenderConfig(), nil)
	ray, hit, ok := rt.InspectPixel(x, y)

	response := InspectResponse{
		X:            x,
		Y:            y,
		RayOrigin:    vecArray(ray.Origin),
		RayDirection: vecArray(ray.Direction),
		ShapeIndex:   -1,
		Color:        core.Black.Hex(),
	}
	if !ok {
		return response
	}

	materialType, materialProps := extractMaterialInfo(hit.Shape.Material)
	geometryType, geometryProps := extractGeometryInfo(hit.Shape.Geometry)

	response.Hit = true
	response.ShapeIndex = hit.Index
	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Point = vecArray(hit.Point)
	response.Normal = vecArray(geometry.Normal(hit.Shape.Geometry, hit.Point))
	response.Distance = hit.T
	response.Color = rt.Tracer().Shade(hit).Hex()
	response.Properties = map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
	}
	return response
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
