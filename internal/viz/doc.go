// Package viz renders results in the terminal.
//
//   - [Report]: lipgloss-styled summary of an experiment report
//   - [DensityGraph]: asciigraph line chart of g(E)/g(E_F)
//   - [ShadeMap]: character-ramp view of a joint density
//   - Theme selection with 3 built-in color schemes
//
// Output is plain text when stdout is not a terminal.
package viz
