// Package render presents a stats.Summary: a coloured text block for the
// terminal and SVG charts for export. It formats numbers it is given and
// makes no decisions of its own.
package render
