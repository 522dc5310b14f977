package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var ErrMalformedOBJ = errors.New("loaders: malformed obj")

var logger = log.New("loaders")

// OBJData contains the geometry read from a Wavefront OBJ file
type OBJData struct {
	Vertices  []core.Vec3
	Triangles []*geometry.Triangle
}

// LoadOBJ reads a Wavefront OBJ file and returns its faces as triangles sharing mat
func LoadOBJ(path string, mat material.Material) (*OBJData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file: %w", err)
	}
	defer file.Close()

	start := time.Now()
	data, err := ParseOBJ(file, mat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("loaded %d vertices and %d triangles from %s in %s",
		len(data.Vertices), len(data.Triangles), path, time.Since(start))
	return data, nil
}

// ParseOBJ reads OBJ records from r. Only vertex positions ("v") and faces ("f")
// are used; polygons are fan-triangulated around their first vertex and other
// record types are skipped.
func ParseOBJ(r io.Reader, mat material.Material) (*OBJData, error) {
	data := &OBJData{
		Vertices:  make([]core.Vec3, 0),
		Triangles: make([]*geometry.Triangle, 0),
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVertex(lineTokens)
			if err != nil {
				return nil, malformed(lineNum, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "f":
			triangles, err := parseFace(lineTokens, data.Vertices, mat)
			if err != nil {
				return nil, malformed(lineNum, err)
			}
			data.Triangles = append(data.Triangles, triangles...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	return data, nil
}

func malformed(lineNum int, err error) error {
	return fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNum, err)
}

// parseVertex reads "v x y z [w]"; the optional w is ignored
func parseVertex(lineTokens []string) (core.Vec3, error) {
	if len(lineTokens) < 4 {
		return core.Vec3{}, fmt.Errorf("expected 3 coordinates for 'v'; got %d", len(lineTokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q", lineTokens[i+1])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseFace reads "f a b c ..." where each argument is v, v/vt, v//vn or v/vt/vn
func parseFace(lineTokens []string, vertices []core.Vec3, mat material.Material) ([]*geometry.Triangle, error) {
	args := lineTokens[1:]
	if len(args) < 3 {
		return nil, fmt.Errorf("expected at least 3 vertices for 'f'; got %d", len(args))
	}

	corners := make([]core.Vec3, len(args))
	for i, arg := range args {
		indexToken, _, _ := strings.Cut(arg, "/")
		if indexToken == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", i)
		}
		offset, err := selectVertexIndex(indexToken, len(vertices))
		if err != nil {
			return nil, fmt.Errorf("face argument %d: %v", i, err)
		}
		corners[i] = vertices[offset]
	}

	triangles := make([]*geometry.Triangle, 0, len(corners)-2)
	for i := 1; i+1 < len(corners); i++ {
		triangles = append(triangles, geometry.NewTriangle(corners[0], corners[i], corners[i+1], mat))
	}
	return triangles, nil
}

// selectVertexIndex converts a 1-based (or negative, relative to the end) index to an offset
func selectVertexIndex(indexToken string, count int) (int, error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil {
		return -1, fmt.Errorf("invalid index %q", indexToken)
	}

	var offset int
	if index < 0 {
		offset = count + index
	} else {
		offset = index - 1
	}
	if offset < 0 || offset >= count {
		return -1, fmt.Errorf("index %d out of bounds for %d vertices", index, count)
	}
	return offset, nil
}
