// Package tvg is a deterministic software rasterizer for TinyVG draw
// commands. It turns a decoded stream of [DrawCommand] values plus a color
// table into an RGBA pixel [Framebuffer].
//
// # Overview
//
// The package is organized leaves-first:
//
//   - Geometry primitives (Point, the internal 2x2 rotation matrix)
//   - A path flattener (internal/flatten) that reduces curves and arcs to
//     polylines
//   - A scanline filler (internal/fill) using winding-rule ray crossings
//   - A stroke rasterizer (internal/capsule) using an exact signed-distance
//     capsule formula
//   - A style sampler (style.go) resolving flat/linear/radial styles
//     against a color table
//
// [Render] is the single entry point; it dispatches one [DrawCommand] at a
// time against a caller-owned [Framebuffer].
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down. Logical
// coordinates (as carried by [Path], [Rectangle], [Line]) are scaled to
// framebuffer pixels by the ratio of framebuffer to header dimensions.
//
// # Concurrency
//
// Rendering is single-threaded and synchronous. A single [Render] call
// mutates only the framebuffer and its own local scratch buffers; nothing
// here is safe to share across concurrent renders of different images
// without independent scratch state, though concurrent calls targeting
// distinct framebuffers are fine.
package tvg

// Version identifies this rendering core, independent of any TinyVG
// container-format version it might be paired with.
const Version = "0.1.0"
