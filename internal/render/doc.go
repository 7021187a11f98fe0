// Package render is the plotting surface. It turns computed results into
// gonum/plot figures and writes them as PNG, SVG or PDF.
//
//   - [DensityOfStatesPlot]: g(E) over [0, 2·E_F] with the occupied region
//     filled and a dashed line at E_F
//   - [FieldPanels]: one heat map and colour bar per joint density
//   - [Write]: renders every result of an experiment report into a directory
//
// Rendering never feeds back into the models; it only reads their output.
package render
