package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/bvhtree/asset"
	"github.com/achilleasa/bvhtree/asset/bvh"
	"github.com/achilleasa/bvhtree/log"
	"github.com/achilleasa/bvhtree/types"
)

// Read the triangles defined by a wavefront obj file.
func ReadTriangles(filename string) ([]*bvh.Triangle, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return newWavefrontReader().Read(res)
}

type wavefrontReader struct {
	logger log.Logger

	// Coordinates parsed so far across all included files.
	vertexList []types.Vec3
	uvList     []types.Vec2
	normalList []types.Vec3

	triangles []*bvh.Triangle

	// A stack of include frames used to annotate errors.
	errStack []string
}

func newWavefrontReader() *wavefrontReader {
	return &wavefrontReader{
		logger:     log.New("wavefront reader"),
		vertexList: make([]types.Vec3, 0),
		uvList:     make([]types.Vec2, 0),
		normalList: make([]types.Vec3, 0),
		triangles:  make([]*bvh.Triangle, 0),
		errStack:   make([]string, 0),
	}
}

// Read triangles from a wavefront obj resource. Faces with more than three
// vertices are triangulated as a fan around their first vertex. Statements
// other than v, vt, vn, f and call are ignored.
func (r *wavefrontReader) Read(res *asset.Resource) ([]*bvh.Triangle, error) {
	r.logger.Noticef(`parsing wavefront geometry from "%s"`, res.Path())
	start := time.Now()

	err := r.parse(res)
	if err != nil {
		return nil, err
	}

	r.logger.Noticef(
		"parsed %d triangles (%d vertices, %d uvs, %d normals) in %d ms",
		len(r.triangles), len(r.vertexList), len(r.uvList), len(r.normalList),
		time.Since(start).Nanoseconds()/1e6,
	)
	return r.triangles, nil
}

func (r *wavefrontReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	// Included files use 1-based indices relative to their own coordinates.
	relVertexOffset := len(r.vertexList)
	relUvOffset := len(r.uvList)
	relNormalOffset := len(r.normalList)

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "call"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [call]", res.Path(), lineNum))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.logger.Infof(`parsing included file "%s"`, incRes.Path())
			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}

			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.normalList = append(r.normalList, v)
		case "vt":
			v, err := parseVec2(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.uvList = append(r.uvList, v)
		case "f":
			tris, err := r.parseFace(lineTokens, relVertexOffset, relUvOffset, relNormalOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.triangles = append(r.triangles, tris...)
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, err.Error())
	}

	return nil
}

// A single face corner.
type faceVertex struct {
	vertex int

	uv     int
	normal int
}

// Parse a face definition and triangulate it.
func (r *wavefrontReader) parseFace(lineTokens []string, relVertexOffset, relUvOffset, relNormalOffset int) ([]*bvh.Triangle, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected at least 3 arguments; got %d`, len(lineTokens)-1)
	}

	corners := make([]faceVertex, len(lineTokens)-1)
	hasUVs := true
	hasNormals := true
	for arg, token := range lineTokens[1:] {
		vTokens := strings.Split(token, "/")
		if len(vTokens) > 3 {
			return nil, fmt.Errorf("face argument %d contains %d indices; expected at most 3", arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		corner := faceVertex{uv: -1, normal: -1}
		var err error
		corner.vertex, err = selectFaceCoordIndex(vTokens[0], len(r.vertexList), relVertexOffset)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}

		if len(vTokens) > 1 && vTokens[1] != "" {
			corner.uv, err = selectFaceCoordIndex(vTokens[1], len(r.uvList), relUvOffset)
			if err != nil {
				return nil, fmt.Errorf("could not parse tex coord for face argument %d: %s", arg, err.Error())
			}
		} else {
			hasUVs = false
		}

		if len(vTokens) > 2 && vTokens[2] != "" {
			corner.normal, err = selectFaceCoordIndex(vTokens[2], len(r.normalList), relNormalOffset)
			if err != nil {
				return nil, fmt.Errorf("could not parse normal coord for face argument %d: %s", arg, err.Error())
			}
		} else {
			hasNormals = false
		}

		corners[arg] = corner
	}

	tris := make([]*bvh.Triangle, 0, len(corners)-2)
	for index := 1; index < len(corners)-1; index++ {
		tris = append(tris, r.assembleTriangle(
			[3]faceVertex{corners[0], corners[index], corners[index+1]},
			hasUVs, hasNormals,
		))
	}
	return tris, nil
}

func (r *wavefrontReader) assembleTriangle(corners [3]faceVertex, hasUVs, hasNormals bool) *bvh.Triangle {
	tri := bvh.NewTriangle(
		r.vertexList[corners[0].vertex],
		r.vertexList[corners[1].vertex],
		r.vertexList[corners[2].vertex],
	)
	tri.SetIndices([3]int32{int32(corners[0].vertex), int32(corners[1].vertex), int32(corners[2].vertex)})
	tri.SetTransform(types.Ident4())

	if hasUVs {
		tri.SetUVs([3]types.Vec2{r.uvList[corners[0].uv], r.uvList[corners[1].uv], r.uvList[corners[2].uv]})
	}

	if hasNormals {
		tri.SetNormals([3]types.Vec3{r.normalList[corners[0].normal], r.normalList[corners[1].normal], r.normalList[corners[2].normal]})
	}

	return tri
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("%s", strings.Trim(
		fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
		"\n",
	))
}

// Push a frame to the error stack.
func (r *wavefrontReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Given an index for a face coord type (vertex, normal, tex) calculate the
// proper offset into the coord list. Wavefront format can also use negative
// indices to reference elements from the end of the coord list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}

// Parse a Vec2 row.
func parseVec2(lineTokens []string) (types.Vec2, error) {
	if len(lineTokens) < 3 {
		return types.Vec2{}, fmt.Errorf(`unsupported syntax for "%s"; expected 2 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec2{}
	for tokIdx := 1; tokIdx <= 2; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
