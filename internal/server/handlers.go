package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/magick"
	"github.com/ironsheep/color-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors, and results that cannot be encoded (non-finite
// values), return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.cfg.Debug {
		log.Printf("tool %s finished in %s (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	// JSON has no Inf or NaN, so a result holding one cannot be returned
	text, err := marshalJSON(result)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed",
			fmt.Sprintf("result of %s is not representable as JSON: %v", params.Name, err))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Maps color space names or codes onto colorspace.Space
//  4. Calls the appropriate colorspace/raster/magick function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_convert_bulk":
		return s.handleColorConvertBulk(args)
	case "color_saturate_bulk":
		return s.handleColorSaturateBulk(args)
	case "color_spaces":
		return s.handleColorSpaces(args)
	case "color_magick_to_operations":
		return s.handleMagickToOperations(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalJSON converts a value to a pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// spaceArg accepts a color space as a name ("lch") or an integer code (3).
type spaceArg struct {
	colorspace.Space
}

func (a *spaceArg) UnmarshalJSON(b []byte) error {
	var code int
	if err := json.Unmarshal(b, &code); err == nil {
		s, err := colorspace.SpaceFromCode(code)
		if err != nil {
			return err
		}
		a.Space = s
		return nil
	}

	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("color space must be a name or an integer code, got %s", b)
	}
	s, err := colorspace.ParseSpace(name)
	if err != nil {
		return err
	}
	a.Space = s
	return nil
}

// requireSpaces checks that both ends of a conversion were supplied.
func requireSpaces(src, dst *spaceArg) error {
	if src == nil {
		return fmt.Errorf("missing required argument: src")
	}
	if dst == nil {
		return fmt.Errorf("missing required argument: dst")
	}
	return nil
}

// === Scalar Conversion Handlers ===

type colorConvertArgs struct {
	Value []float64 `json:"value"`
	Src   *spaceArg `json:"src"`
	Dst   *spaceArg `json:"dst"`
}

// ConvertResult is the result of the color_convert tool.
type ConvertResult struct {
	Value [3]float64 `json:"value"`
	Src   string     `json:"src"`
	Dst   string     `json:"dst"`

	// Hex is the "#rrggbb" form of the result, set when Dst is rgb.
	Hex string `json:"hex,omitempty"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := requireSpaces(a.Src, a.Dst); err != nil {
		return nil, err
	}
	if len(a.Value) != 3 {
		return nil, fmt.Errorf("value must have exactly 3 components, got %d", len(a.Value))
	}

	out := colorspace.Convert(colorspace.Triple{a.Value[0], a.Value[1], a.Value[2]}, a.Src.Space, a.Dst.Space)

	result := &ConvertResult{
		Value: out,
		Src:   a.Src.String(),
		Dst:   a.Dst.String(),
	}
	if a.Dst.Space == colorspace.RGBSpace {
		result.Hex = colorful.Color{R: out[0], G: out[1], B: out[2]}.Clamped().Hex()
	}
	return result, nil
}

// === Bulk Conversion Handlers ===

// Sample types accepted by the bulk tools.
const (
	dtypeFloat  = "float"
	dtypeUint8  = "uint8"
	dtypeUint16 = "uint16"
)

// RasterResult is the result of the bulk tools.
type RasterResult struct {
	// Shape is [bands, height, width].
	Shape  [3]int        `json:"shape"`
	Dtype  string        `json:"dtype"`
	Raster [][][]float64 `json:"raster"`
}

func parseDtype(dtype string) (string, error) {
	switch dtype {
	case "", dtypeFloat:
		return dtypeFloat, nil
	case dtypeUint8, dtypeUint16:
		return dtype, nil
	default:
		return "", fmt.Errorf("unknown dtype %q, want float, uint8 or uint16", dtype)
	}
}

// loadRaster builds a raster from request data and enforces the pixel limit.
// Integer samples are scaled to 0-1. Band count is left to the raster kernel
// to validate.
func (s *Server) loadRaster(nested [][][]float64, dtype string) (*raster.Raster, error) {
	if nested == nil {
		return nil, fmt.Errorf("missing required argument: raster")
	}
	r, err := raster.FromNested(nested)
	if err != nil {
		return nil, fmt.Errorf("invalid raster: %w", err)
	}
	b, h, w := r.Shape()
	if s.cfg.MaxPixels > 0 && h*w > s.cfg.MaxPixels {
		return nil, fmt.Errorf("raster has %d pixels, limit is %d", h*w, s.cfg.MaxPixels)
	}

	switch dtype {
	case dtypeUint8:
		samples := make([]uint8, len(r.Data()))
		for i, v := range r.Data() {
			if !isSample(v, math.MaxUint8) {
				return nil, fmt.Errorf("raster value %v is not a uint8 sample", v)
			}
			samples[i] = uint8(v)
		}
		return raster.FromUint8(samples, b, h, w)
	case dtypeUint16:
		samples := make([]uint16, len(r.Data()))
		for i, v := range r.Data() {
			if !isSample(v, math.MaxUint16) {
				return nil, fmt.Errorf("raster value %v is not a uint16 sample", v)
			}
			samples[i] = uint16(v)
		}
		return raster.FromUint16(samples, b, h, w)
	}
	return r, nil
}

// isSample reports whether v is an integer in [0, top].
func isSample(v, top float64) bool {
	return v == math.Trunc(v) && v >= 0 && v <= top
}

// rasterResult builds the tool result. An RGB raster requested with integer
// samples is scaled back to that sample type.
func rasterResult(r *raster.Raster, space colorspace.Space, dtype string) (*RasterResult, error) {
	b, h, w := r.Shape()
	out := r
	if space != colorspace.RGBSpace {
		dtype = dtypeFloat
	}

	var samples []float64
	switch dtype {
	case dtypeUint8:
		for _, v := range r.Uint8() {
			samples = append(samples, float64(v))
		}
	case dtypeUint16:
		for _, v := range r.Uint16() {
			samples = append(samples, float64(v))
		}
	}
	if samples != nil {
		var err error
		if out, err = raster.FromSlice(samples, b, h, w); err != nil {
			return nil, err
		}
	}

	return &RasterResult{
		Shape:  [3]int{b, h, w},
		Dtype:  dtype,
		Raster: out.Nested(),
	}, nil
}

type colorConvertBulkArgs struct {
	Raster [][][]float64 `json:"raster"`
	Src    *spaceArg     `json:"src"`
	Dst    *spaceArg     `json:"dst"`
	Dtype  string        `json:"dtype"`
}

func (s *Server) handleColorConvertBulk(args json.RawMessage) (interface{}, error) {
	var a colorConvertBulkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := requireSpaces(a.Src, a.Dst); err != nil {
		return nil, err
	}
	dtype, err := parseDtype(a.Dtype)
	if err != nil {
		return nil, err
	}
	if dtype != dtypeFloat && a.Src.Space != colorspace.RGBSpace {
		return nil, fmt.Errorf("dtype %s requires src rgb, got %s", dtype, a.Src)
	}
	r, err := s.loadRaster(a.Raster, dtype)
	if err != nil {
		return nil, err
	}

	out, err := raster.ConvertBulk(r, a.Src.Space, a.Dst.Space)
	if err != nil {
		return nil, err
	}
	return rasterResult(out, a.Dst.Space, dtype)
}

type colorSaturateBulkArgs struct {
	Raster  [][][]float64 `json:"raster"`
	Satmult *float64      `json:"satmult"`
	Dtype   string        `json:"dtype"`
}

func (s *Server) handleColorSaturateBulk(args json.RawMessage) (interface{}, error) {
	var a colorSaturateBulkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	satmult := 1.0
	if a.Satmult != nil {
		satmult = *a.Satmult
	}
	dtype, err := parseDtype(a.Dtype)
	if err != nil {
		return nil, err
	}
	r, err := s.loadRaster(a.Raster, dtype)
	if err != nil {
		return nil, err
	}

	out, err := raster.SaturateBulk(r, satmult)
	if err != nil {
		return nil, err
	}
	return rasterResult(out, colorspace.RGBSpace, dtype)
}

// === Helper Handlers ===

// SpaceInfo describes one supported color space.
type SpaceInfo struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

func (s *Server) handleColorSpaces(_ json.RawMessage) (interface{}, error) {
	spaces := colorspace.Spaces()
	out := make([]SpaceInfo, len(spaces))
	for i, sp := range spaces {
		out[i] = SpaceInfo{Name: sp.String(), Code: int(sp)}
	}
	return map[string]interface{}{"spaces": out}, nil
}

type magickArgs struct {
	Options string `json:"options"`
}

func (s *Server) handleMagickToOperations(args json.RawMessage) (interface{}, error) {
	var a magickArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"operations": magick.ToOperations(a.Options),
	}, nil
}
