// Package server exposes the geometry queries over a JSON HTTP API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/o0olele/shape3d/geometry"
	"github.com/o0olele/shape3d/log"
	"github.com/o0olele/shape3d/math32"
)

var logger = log.New(log.ModuleServer)

// ContainsRequest asks whether Point lies in the shape.
type ContainsRequest struct {
	ShapeRequest
	Point math32.Vector3 `json:"point"`
}

// ContainsResponse is the reply to ContainsRequest.
type ContainsResponse struct {
	Type     string `json:"type"`
	Contains bool   `json:"contains"`
}

// CenterResponse is the reply to a center query.
type CenterResponse struct {
	Center math32.Vector3 `json:"center"`
}

// BoundsResponse holds both bounding volumes of a shape. Extent is the
// world-space min and max of Box.
type BoundsResponse struct {
	Center math32.Vector3  `json:"center"`
	Box    geometry.Box    `json:"box"`
	Extent geometry.AABB   `json:"extent"`
	Sphere geometry.Sphere `json:"sphere"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter returns the API router with all routes registered under /api.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/types", typesHandler).Methods("GET")
	api.HandleFunc("/contains", containsHandler).Methods("POST")
	api.HandleFunc("/center", centerHandler).Methods("POST")
	api.HandleFunc("/bounds", boundsHandler).Methods("POST")

	return r
}

func typesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []string{
		geometry.TypeBox,
		geometry.TypeSphere,
		geometry.TypeTriangle,
		geometry.TypePrism,
	})
}

func containsHandler(w http.ResponseWriter, r *http.Request) {
	var req ContainsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	shape, err := decodeShape(req.ShapeRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contains, err := shape.Contains(req.Point)
	if err != nil {
		logger.Warningf("contains %s %s: %v", shape.GetType(), req.Point, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Debugf("contains %s %s -> %v", shape.GetType(), req.Point, contains)
	writeJSON(w, http.StatusOK, ContainsResponse{Type: shape.GetType(), Contains: contains})
}

func centerHandler(w http.ResponseWriter, r *http.Request) {
	var req ShapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	shape, err := decodeShape(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CenterResponse{Center: shape.FindCenter()})
}

func boundsHandler(w http.ResponseWriter, r *http.Request) {
	var req ShapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	shape, err := decodeShape(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	box, err := shape.GetBoundingBox()
	if err != nil {
		logger.Warningf("bounding box of %s: %v", shape.GetType(), err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sphere, err := shape.GetBoundingSphere()
	if err != nil {
		logger.Warningf("bounding sphere of %s: %v", shape.GetType(), err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Debugf("bounds %s -> box %s, sphere %s", shape.GetType(), box, sphere)
	writeJSON(w, http.StatusOK, BoundsResponse{Center: shape.FindCenter(), Box: box, Extent: box.AABB(), Sphere: sphere})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
