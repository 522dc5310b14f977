package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const cubeFaceOBJ = `# unit square in the XY plane
o square
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
s off
f 1/1/1 2/1/1 3/1/1 4/1/1
`

func TestParseOBJ_Quad(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	data, err := ParseOBJ(strings.NewReader(cubeFaceOBJ), mat)
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if len(data.Triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(data.Triangles))
	}

	// Fan around the first vertex: (1,2,3) and (1,3,4)
	first, second := data.Triangles[0], data.Triangles[1]
	if first.V0 != core.NewVec3(0, 0, 0) || first.V1 != core.NewVec3(1, 0, 0) || first.V2 != core.NewVec3(1, 1, 0) {
		t.Errorf("Unexpected first triangle %v %v %v", first.V0, first.V1, first.V2)
	}
	if second.V0 != core.NewVec3(0, 0, 0) || second.V1 != core.NewVec3(1, 1, 0) || second.V2 != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected second triangle %v %v %v", second.V0, second.V1, second.V2)
	}
	for i, tri := range data.Triangles {
		if tri.Material != mat {
			t.Errorf("Triangle %d should carry the given material", i)
		}
		if !tri.Normal().Equals(core.NewVec3(0, 0, 1)) {
			t.Errorf("Triangle %d: expected normal (0, 0, 1), got %v", i, tri.Normal())
		}
	}
}

func TestParseOBJ_PolygonFanCount(t *testing.T) {
	tests := []struct {
		name      string
		face      string
		triangles int
	}{
		{"Triangle", "f 1 2 3", 1},
		{"Quad", "f 1 2 3 4", 2},
		{"Pentagon", "f 1 2 3 4 5", 3},
		{"Hexagon with normals", "f 1//1 2//1 3//1 4//1 5//1 6//1", 4},
	}

	vertices := "v 0 0 0\nv 1 0 0\nv 2 1 0\nv 1 2 0\nv 0 2 0\nv -1 1 0\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseOBJ(strings.NewReader(vertices+tt.face+"\n"), nil)
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(data.Triangles) != tt.triangles {
				t.Errorf("Expected %d triangles, got %d", tt.triangles, len(data.Triangles))
			}
		})
	}
}

func TestParseOBJ_NegativeIndices(t *testing.T) {
	input := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	data, err := ParseOBJ(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(data.Triangles) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(data.Triangles))
	}
	tri := data.Triangles[0]
	if tri.V0 != core.NewVec3(0, 0, 0) || tri.V1 != core.NewVec3(1, 0, 0) || tri.V2 != core.NewVec3(0, 1, 0) {
		t.Errorf("Negative indices resolved wrong: %v %v %v", tri.V0, tri.V1, tri.V2)
	}
}

func TestParseOBJ_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"Short vertex", "v 1 2\n", "line 1"},
		{"Bad coordinate", "v 0 0 0\nv 1 x 0\n", "line 2"},
		{"Too few face vertices", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3"},
		{"Index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 4\n", "line 5"},
		{"Zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "line 4"},
		{"Missing vertex index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf /1 2 3\n", "line 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.input), nil)
			if !errors.Is(err, ErrMalformedOBJ) {
				t.Fatalf("Expected ErrMalformedOBJ, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("Expected error to mention %q, got %v", tt.line, err)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.obj")
	if err := os.WriteFile(path, []byte(cubeFaceOBJ), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := LoadOBJ(path, nil)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(data.Triangles) != 2 {
		t.Errorf("Expected 2 triangles, got %d", len(data.Triangles))
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), nil); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
