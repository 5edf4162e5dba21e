// Package server implements the MCP (Model Context Protocol) server for the
// colour adjustment tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorspace
// engine through the MCP protocol, so MCP-compatible clients can inspect
// colours and recolour images by name rather than by pixel arithmetic.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Sampling:
//   - image_sample_color: Get color at pixel in hex, RGB, HSL, HSV and LCh
//   - image_sample_colors_multi: Sample multiple points
//
// Colour Adjustment:
//   - image_adjust_colour: Saturate, desaturate, lighten, darken or shift hue,
//     as a single adjustment or an ordered list of steps
//   - image_hue_rotate: Rotate hue by degrees
//   - image_mix_colour: Blend toward a flat colour
//
// Adjustment tools return the result as a base64-encoded PNG and can also
// save it to output_path. Model and operation names are validated against a
// closed list; an unknown name is a tool error.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Diagnostics go to a *slog.Logger (slog.Default() unless NewWithLogger is
// used). stdout carries protocol traffic only.
//
// # Usage
//
// The server is typically started by an MCP client through the serve
// command:
//
//	srv := server.NewWithLogger(logger)
//	if err := srv.Run(); err != nil {
//	    return err
//	}
package server
