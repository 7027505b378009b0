package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/o0olele/shape3d/geometry"
	"github.com/o0olele/shape3d/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func shapeRequest(t *testing.T, kind string, data interface{}) ShapeRequest {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return ShapeRequest{Type: kind, Data: raw}
}

func TestContainsHandler(t *testing.T) {
	sphere := geometry.NewSphere(math32.Vec3(0, 0, 0), 5)

	tests := []struct {
		name  string
		point math32.Vector3
		want  bool
	}{
		{"boundary", math32.Vec3(3, 4, 0), true},
		{"outside", math32.Vec3(3, 4, 0.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, "POST", "/api/contains", ContainsRequest{
				ShapeRequest: shapeRequest(t, geometry.TypeSphere, sphere),
				Point:        tt.point,
			})
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ContainsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, geometry.TypeSphere, resp.Type)
			assert.Equal(t, tt.want, resp.Contains)
		})
	}
}

func TestContainsHandler_prism(t *testing.T) {
	rec := do(t, "POST", "/api/contains", ContainsRequest{
		ShapeRequest: shapeRequest(t, geometry.TypePrism, prismData{
			Points: []math32.Vector3{math32.Vec3(1, 1, 1), math32.Vec3(-1, -1, -1)},
		}),
		Point: math32.Vec3(0, 0, 0),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContainsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Contains)
}

func TestContainsHandler_errors(t *testing.T) {
	tests := []struct {
		name string
		req  ContainsRequest
	}{
		{"empty prism", ContainsRequest{ShapeRequest: shapeRequest(t, geometry.TypePrism, prismData{})}},
		{"degenerate triangle", ContainsRequest{ShapeRequest: shapeRequest(t, geometry.TypeTriangle,
			geometry.NewTriangle(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1), math32.Vec3(2, 2, 2)))}},
		{"unknown type", ContainsRequest{ShapeRequest: shapeRequest(t, "capsule", map[string]int{"radius": 1})}},
		{"missing data", ContainsRequest{ShapeRequest: ShapeRequest{Type: geometry.TypeBox}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, "POST", "/api/contains", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestContainsHandler_invalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contains", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCenterHandler(t *testing.T) {
	tri := geometry.NewTriangle(math32.Vec3(0, 0, 0), math32.Vec3(3, 0, 0), math32.Vec3(0, 3, 3))

	rec := do(t, "POST", "/api/center", shapeRequest(t, geometry.TypeTriangle, tri))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CenterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, math32.Vec3(1, 1, 1), resp.Center)
}

func TestBoundsHandler(t *testing.T) {
	box := geometry.NewBox(math32.Vec3(0, 0, 0), math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1))

	rec := do(t, "POST", "/api/bounds", shapeRequest(t, geometry.TypeBox, box))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BoundsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Box.Equal(box))
	assert.Equal(t, geometry.AABB{Min: math32.Vec3(-1, -1, -1), Max: math32.Vec3(1, 1, 1)}, resp.Extent)
	assert.Equal(t, box.Center, resp.Sphere.Center)
	assert.True(t, math32.Feq(math32.Sqrt(3), resp.Sphere.Radius))
}

func TestBoundsHandler_prismExtent(t *testing.T) {
	rec := do(t, "POST", "/api/bounds", shapeRequest(t, geometry.TypePrism, prismData{
		Center: math32.Vec3(0, 0, 0),
		Points: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1)},
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BoundsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, geometry.AABB{Min: math32.Vec3(0, 0, 0), Max: math32.Vec3(2, 2, 2)}, resp.Extent)
}

func TestBoundsHandler_emptyPrism(t *testing.T) {
	rec := do(t, "POST", "/api/bounds", shapeRequest(t, geometry.TypePrism, prismData{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTypesHandler(t *testing.T) {
	rec := do(t, "GET", "/api/types", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var types []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&types))
	assert.ElementsMatch(t, []string{"box", "sphere", "triangle", "prism"}, types)
}

func TestRouter_methodNotAllowed(t *testing.T) {
	rec := do(t, "GET", "/api/contains", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
