package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// OBJ reader errors.
var (
	ErrMalformedVertex = errors.New("malformed vertex line")
	ErrMalformedFace   = errors.New("malformed face line")
)

// LoadOBJ reads a Wavefront OBJ mesh from a file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ReadOBJ parses a Wavefront OBJ mesh. Vertex colors use the common
// extension of appending r g b (and optionally a) in [0,1] to each "v" line.
// Polygonal faces are fan-triangulated; texture/normal index forms (v/vt/vn)
// and negative indices are accepted, only the position index is kept.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}

	// Colors are collected separately: only meshes where every vertex
	// carries a color end up with a color array.
	colored := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			if err := m.parseVertex(fields[1:], &colored); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case "f":
			if err := m.parseFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			// vt/vn/o/g/usemtl etc. are irrelevant to baking.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if colored != len(m.Vertices) {
		m.Colors = nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) parseVertex(fields []string, colored *int) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: expected at least 3 coordinates, got %d", ErrMalformedVertex, len(fields))
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedVertex, f)
		}
		vals[i] = v
	}

	m.Vertices = append(m.Vertices, geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]})

	// 6 values: xyz + rgb, 7 values: xyz + rgba (or xyzw + rgb, which is
	// rare enough to ignore). Colors are stored as bytes.
	if len(vals) >= 6 {
		c := Color8{
			R: colorByte(vals[3]),
			G: colorByte(vals[4]),
			B: colorByte(vals[5]),
			A: 255,
		}
		if len(vals) >= 7 {
			c.A = colorByte(vals[6])
		}
		m.Colors = append(m.Colors, c)
		*colored++
	}
	return nil
}

func (m *Mesh) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: expected at least 3 indices, got %d", ErrMalformedFace, len(fields))
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		// Keep only the position index of v/vt/vn triples.
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			f = f[:slash]
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedFace, f)
		}
		if v < 0 {
			v = len(m.Vertices) + v // negative indices count from the end
		} else {
			v-- // OBJ indices are 1-based
		}
		idx[i] = v
	}

	// Fan triangulation for quads and larger polygons.
	for i := 1; i < len(idx)-1; i++ {
		m.Faces = append(m.Faces, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return nil
}

// colorByte converts a [0,1] OBJ color channel to an 8-bit value.
func colorByte(v float64) uint8 {
	return uint8(geom.Clamp(v, 0, 1)*255 + 0.5)
}
