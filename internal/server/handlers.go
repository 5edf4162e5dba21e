package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/disintegration/gift"
	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
	"github.com/ironsheep/colourspace-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_adjust_colour").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log().Warn("Tool execution failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
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
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)

	// Colour Adjustment
	case "image_adjust_colour":
		return s.handleImageAdjustColour(args)
	case "image_hue_rotate":
		return s.handleImageHueRotate(args)
	case "image_mix_colour":
		return s.handleImageMixColour(args)

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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Sampling Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

// === Colour Adjustment Handlers ===

// regionArgs restricts an adjustment to part of the image. Region wins when
// both are given.
type regionArgs struct {
	Region *imaging.Region `json:"region,omitempty"`
	Area   string          `json:"area,omitempty"`
}

// render applies filters to img, or to the selected part of it, and encodes
// the result.
func (s *Server) render(img image.Image, ra regionArgs, outputPath string, filters ...gift.Filter) (*imaging.EncodeResult, error) {
	region := ra.Region
	if region == nil && ra.Area != "" {
		r, err := imaging.NamedRegion(img.Bounds(), ra.Area)
		if err != nil {
			return nil, err
		}
		region = &r
	}

	var out image.Image
	if region == nil {
		out = imaging.ApplyFilters(img, filters...)
	} else {
		var err error
		if out, err = imaging.ApplyFiltersToRegion(img, *region, filters...); err != nil {
			return nil, err
		}
	}

	result, err := imaging.Encode(out, outputPath)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		// The file may be a source some earlier call cached.
		s.cache.Evict(outputPath)
	}
	return result, nil
}

type adjustStep struct {
	Model     string  `json:"model"`
	Operation string  `json:"operation"`
	Amount    float64 `json:"amount"`
}

type imageAdjustColourArgs struct {
	regionArgs
	Path       string       `json:"path"`
	Model      string       `json:"model"`
	Operation  string       `json:"operation"`
	Amount     float64      `json:"amount"`
	Steps      []adjustStep `json:"steps,omitempty"`
	OutputPath string       `json:"output_path,omitempty"`
}

func (s *Server) handleImageAdjustColour(args json.RawMessage) (interface{}, error) {
	var a imageAdjustColourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	steps := a.Steps
	if len(steps) == 0 {
		if a.Model == "" || a.Operation == "" {
			return nil, fmt.Errorf("either steps or model and operation are required")
		}
		steps = []adjustStep{{Model: a.Model, Operation: a.Operation, Amount: a.Amount}}
	}

	filters := make([]gift.Filter, 0, len(steps))
	for i, st := range steps {
		f, err := stepFilter(st)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		filters = append(filters, f)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	s.log().Debug("Adjusting image", "path", a.Path, "steps", len(filters))
	return s.render(img, a.regionArgs, a.OutputPath, filters...)
}

func stepFilter(st adjustStep) (gift.Filter, error) {
	kind, err := colorspace.ParseKind(st.Model)
	if err != nil {
		return nil, err
	}
	op, err := colorspace.ParseOp(st.Operation)
	if err != nil {
		return nil, err
	}
	return imaging.AdjustFilter(kind, op, st.Amount)
}

type imageHueRotateArgs struct {
	regionArgs
	Path       string  `json:"path"`
	Model      string  `json:"model"`
	Degrees    float64 `json:"degrees"`
	OutputPath string  `json:"output_path,omitempty"`
}

func (s *Server) handleImageHueRotate(args json.RawMessage) (interface{}, error) {
	var a imageHueRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := colorspace.ParseKind(a.Model)
	if err != nil {
		return nil, err
	}
	f, err := imaging.HueRotateFilter(kind, a.Degrees)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.render(img, a.regionArgs, a.OutputPath, f)
}

type imageMixColourArgs struct {
	regionArgs
	Path       string   `json:"path"`
	Colour     string   `json:"colour"`
	Opacity    *float64 `json:"opacity,omitempty"`
	OutputPath string   `json:"output_path,omitempty"`
}

func (s *Server) handleImageMixColour(args json.RawMessage) (interface{}, error) {
	var a imageMixColourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opacity := 0.5
	if a.Opacity != nil {
		opacity = *a.Opacity
	}
	mix, err := imaging.ParseColour(a.Colour)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.render(img, a.regionArgs, a.OutputPath, imaging.MixFilter(mix, opacity))
}
