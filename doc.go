// Package roundelim is the automated round-elimination engine for
// distributed locally-checkable labeling (LCL) problems on regular graphs.
//
// Given an LCL problem — a degree-d_A active constraint and a degree-d_P
// passive constraint over a finite label alphabet — it mechanizes the
// round-elimination transformation: producing a new LCL whose complexity is
// exactly one round less than the input, together with triviality checks,
// label hardening/relaxation, and diagram-based pruning.
//
// Everything is organized under focused subpackages:
//
//	bigset/      — growable word-backed label-set bitmap
//	label/       — Group, Part, Line, Interner: the labeling alphabet
//	constraint/  — Constraint and its maximization closure
//	problem/     — Problem: speedup, diagram, triviality, coloring,
//	               relax, harden, rename, serialization
//	progress/    — cancellation-friendly progress reporting
//	core/        — thread-safe Graph/Vertex/Edge primitives, repurposed here
//	               as the strength diagram's public representation
//	builder/     — deterministic graph constructors, used to materialize
//	               concrete regular graphs for diagram/fixture tests
//	dfs/         — depth-first traversal and cycle/topological checks over
//	               core.Graph, used to sanity-check that a computed diagram
//	               is acyclic
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// specification this module implements and the grounding of each package.
package roundelim
