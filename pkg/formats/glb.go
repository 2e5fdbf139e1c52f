package formats

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// GLB format errors.
var (
	ErrNoGeometry = errors.New("asset has no geometry")
	ErrNoTexture  = errors.New("asset has no base color texture")
	ErrUVMismatch = errors.New("uv count does not match vertex count")
)

// GLB container constants.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	chunkJSON    = 0x4E4F534A // "JSON"
	chunkBIN     = 0x004E4942 // "BIN\0"
	glbGenerator = "InstantTexture"
)

// Asset is a UV-mapped triangle mesh with a baked base color texture,
// ready for export as a self-contained .glb.
type Asset struct {
	Vertices []geom.Vec3
	UVs      []geom.Vec2
	Faces    [][3]int

	Texture         *image.NRGBA
	BaseColorFactor [4]float64
	MetallicFactor  float64
	RoughnessFactor float64
}

// NewAsset builds an Asset with the default PBR factors the baker exports:
// white base color, non-metallic, fully rough.
func NewAsset(vertices []geom.Vec3, uvs []geom.Vec2, faces [][3]int, texture *image.NRGBA) *Asset {
	return &Asset{
		Vertices:        vertices,
		UVs:             uvs,
		Faces:           faces,
		Texture:         texture,
		BaseColorFactor: [4]float64{1, 1, 1, 1},
		MetallicFactor:  0,
		RoughnessFactor: 1,
	}
}

// ExportGLB writes the asset to a .glb file.
func ExportGLB(path string, a *Asset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteGLB(f, a); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteGLB writes the asset as a binary glTF 2.0 container: a 12-byte
// header, a space-padded JSON chunk and a zero-padded binary chunk holding
// positions, UVs, indices and the PNG-encoded texture.
func WriteGLB(w io.Writer, a *Asset) error {
	if len(a.Vertices) == 0 || len(a.Faces) == 0 {
		return ErrNoGeometry
	}
	if a.Texture == nil {
		return ErrNoTexture
	}
	if len(a.UVs) != len(a.Vertices) {
		return fmt.Errorf("%w: %d uvs, %d vertices", ErrUVMismatch, len(a.UVs), len(a.Vertices))
	}

	bin, views, err := a.encodeBinary()
	if err != nil {
		return err
	}

	doc := a.buildDocument(views, len(bin))
	jsonChunk, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	// JSON chunks are padded with spaces to a 4-byte boundary.
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}

	total := 12 + 8 + len(jsonChunk) + 8 + len(bin)

	header := []uint32{glbMagic, glbVersion, uint32(total)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	if err := writeChunk(w, chunkJSON, jsonChunk); err != nil {
		return err
	}
	return writeChunk(w, chunkBIN, bin)
}

func writeChunk(w io.Writer, chunkType uint32, data []byte) error {
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{uint32(len(data)), chunkType}); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// encodeBinary lays out the BIN chunk: positions, UVs, indices, PNG image,
// each view aligned to 4 bytes (zero padded).
func (a *Asset) encodeBinary() ([]byte, []gltfView, error) {
	var buf bytes.Buffer
	var views []gltfView

	addView := func(data []byte) {
		views = append(views, gltfView{
			Buffer:     0,
			ByteOffset: buf.Len(),
			ByteLength: len(data),
		})
		buf.Write(data)
		for buf.Len()%4 != 0 {
			buf.WriteByte(0)
		}
	}

	positions := make([]float32, 0, len(a.Vertices)*3)
	for _, v := range a.Vertices {
		positions = append(positions, float32(v.X), float32(v.Y), float32(v.Z))
	}
	addView(toBytes(positions))

	uvs := make([]float32, 0, len(a.UVs)*2)
	for _, uv := range a.UVs {
		uvs = append(uvs, float32(uv.X), float32(uv.Y))
	}
	addView(toBytes(uvs))

	indices := make([]uint32, 0, len(a.Faces)*3)
	for _, f := range a.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}
	addView(toBytes(indices))

	var img bytes.Buffer
	if err := png.Encode(&img, a.Texture); err != nil {
		return nil, nil, err
	}
	addView(img.Bytes())

	return buf.Bytes(), views, nil
}

// toBytes serializes a numeric slice as little-endian bytes.
func toBytes[T float32 | uint32](vals []T) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, vals)
	return buf.Bytes()
}

func (a *Asset) buildDocument(views []gltfView, binLen int) *gltfDocument {
	minPos, maxPos := a.positionBounds()

	return &gltfDocument{
		Asset:  gltfAsset{Version: "2.0", Generator: glbGenerator},
		Scene:  0,
		Scenes: []gltfScene{{Nodes: []int{0}}},
		Nodes:  []gltfNode{{Mesh: 0}},
		Meshes: []gltfMesh{{
			Primitives: []gltfPrimitive{{
				Attributes: map[string]int{
					"POSITION":   0,
					"TEXCOORD_0": 1,
				},
				Indices:  2,
				Material: 0,
			}},
		}},
		Materials: []gltfMaterial{{
			PBRMetallicRoughness: gltfPBR{
				BaseColorFactor:  a.BaseColorFactor,
				BaseColorTexture: gltfTextureIndex{Index: 0},
				MetallicFactor:   a.MetallicFactor,
				RoughnessFactor:  a.RoughnessFactor,
			},
		}},
		Textures: []gltfTexture{{Sampler: 0, Source: 0}},
		Images:   []gltfImage{{BufferView: 3, MimeType: "image/png"}},
		Samplers: []gltfSampler{{
			MagFilter: filterLinear,
			MinFilter: filterLinearMipmapLinear,
			WrapS:     wrapRepeat,
			WrapT:     wrapRepeat,
		}},
		Accessors: []gltfAccessor{
			{
				BufferView:    0,
				ComponentType: componentFloat,
				Count:         len(a.Vertices),
				Type:          "VEC3",
				Min:           minPos,
				Max:           maxPos,
			},
			{
				BufferView:    1,
				ComponentType: componentFloat,
				Count:         len(a.UVs),
				Type:          "VEC2",
			},
			{
				BufferView:    2,
				ComponentType: componentUint32,
				Count:         len(a.Faces) * 3,
				Type:          "SCALAR",
			},
		},
		BufferViews: views,
		Buffers:     []gltfBuffer{{ByteLength: binLen}},
	}
}

// positionBounds computes the min/max accessor bounds required for the
// POSITION accessor, in float32 precision to match the encoded data.
func (a *Asset) positionBounds() (min, max []float64) {
	min = []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range a.Vertices {
		for i, c := range []float64{v.X, v.Y, v.Z} {
			c = float64(float32(c))
			if c < min[i] {
				min[i] = c
			}
			if c > max[i] {
				max[i] = c
			}
		}
	}
	return min, max
}
