// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color space conversion
// through the MCP protocol, so MCP-compatible clients can convert single colors
// and whole rasters between RGB, XYZ, LAB, LCH and LUV.
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
// Conversion:
//   - color_convert: Convert one color value
//   - color_convert_bulk: Convert every pixel of a 3×H×W raster
//
// Saturation:
//   - color_saturate_bulk: Scale LCH chroma of an RGB raster
//
// Helpers:
//   - color_spaces: List color space names and codes
//   - color_magick_to_operations: Translate ImageMagick convert options
//
// Color spaces are accepted either by name ("rgb", "lch", case-insensitive)
// or by integer code (0-4, in the order rgb, xyz, lab, lch, luv).
//
// Rasters travel inline as [band][row][column] arrays. Bulk requests larger
// than Config.MaxPixels are rejected before any work is done.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.NewWithConfig(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
