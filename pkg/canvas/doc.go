// Package canvas provides the drawing surfaces stepview renders frames onto.
//
// A [Surface] offers a handful of stroke-and-fill primitives in surface
// units, with the origin at the top-left corner. Three implementations
// exist:
//
//   - [SVG] records primitives as SVG elements. Identical draw sequences
//     produce byte-identical documents.
//   - [Raster] rasterizes primitives onto an RGBA image using the Go
//     Regular font for text, and encodes PNG without external tools.
//   - [Recorder] keeps the primitives as values, for inspection in tests.
//
// Every frame begins with [Surface.Clear], which resets the surface to a
// white background with a black border. Renderers never draw incrementally.
//
// # Format Conversion
//
// [ToPNG] and [ToPDF] convert SVG bytes to other formats with the external
// rsvg-convert tool (from librsvg):
//
//	svg := surface.Bytes()
//	pdf, err := canvas.ToPDF(svg)
//	png, err := canvas.ToPNG(svg, 2.0)
package canvas
