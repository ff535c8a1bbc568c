// Package report turns a cost grid and a search result into the data a
// presentation layer renders: the grid with start and end markers, a
// step-by-step walk of the path with corner/start/end flags, the total
// cost or an unreachable marker, and the list of visited corners.
//
// Build produces a Report; WriteText and WriteYAML encode it.
package report
