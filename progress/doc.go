// Package progress gives long-running operations (maximize, speedup,
// diagram, triviality) a single, uniform way to report how far along
// they are, mirroring the event-handler hooks the original
// round-eliminator threads through its own long loops and the
// Ctx/OnVisit/OnExit hook style lvlath's graph.DFSOptions uses for its
// traversals.
//
// There is no logging library anywhere in this module: the teacher
// carries none, and the progress Handler is the only interior
// observation point the design calls for.
package progress
