package server

import (
	"encoding/json"
	"fmt"

	"github.com/o0olele/shape3d/geometry"
	"github.com/o0olele/shape3d/math32"
)

// ShapeRequest carries a shape of the given type; Data holds the type
// specific fields.
type ShapeRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type prismData struct {
	Center math32.Vector3   `json:"center"`
	Points []math32.Vector3 `json:"points"`
}

// decodeShape turns a ShapeRequest into a geometry.Shape.
func decodeShape(req ShapeRequest) (geometry.Shape, error) {
	if len(req.Data) == 0 || string(req.Data) == "null" {
		return nil, fmt.Errorf("missing %s data", req.Type)
	}

	switch req.Type {
	case geometry.TypeBox:
		var box geometry.Box
		if err := json.Unmarshal(req.Data, &box); err != nil {
			return nil, fmt.Errorf("invalid box data: %w", err)
		}
		return box, nil

	case geometry.TypeSphere:
		var sphere geometry.Sphere
		if err := json.Unmarshal(req.Data, &sphere); err != nil {
			return nil, fmt.Errorf("invalid sphere data: %w", err)
		}
		return sphere, nil

	case geometry.TypeTriangle:
		var triangle geometry.Triangle
		if err := json.Unmarshal(req.Data, &triangle); err != nil {
			return nil, fmt.Errorf("invalid triangle data: %w", err)
		}
		return triangle, nil

	case geometry.TypePrism:
		var data prismData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return nil, fmt.Errorf("invalid prism data: %w", err)
		}
		return geometry.NewPrism(data.Center, data.Points...), nil
	}

	return nil, fmt.Errorf("unknown geometry type %q", req.Type)
}
