// Package builder provides reusable "functional-options"-style building blocks
// for graph construction. It lives alongside core to centralize common
// configuration, ID schemes, and weight distributions, keeping implementations
// DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, etc.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Graph construction:
//     – BuildGraph:        resolves options and applies Constructors in order.
//     – RandomRegular:      d-regular simple graph via stub-matching, used to
//       build random strength-diagram fixtures for the round-elimination engine.
//   - Shared constants:
//     – MethodRandomRegular: token for error context.
//
// Guarantees:
//
//   - Vertex reuse: re-running a constructor on the same g does not duplicate
//     vertices (AddVertex is idempotent); it does add a fresh set of edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping a method-context token for easy filtering.
//   - Documented algorithmic complexity (O(n·d) etc.) per constructor.
//   - Fully testable: all IDFn, WeightFn, and BuilderOption branches are covered
//     by unit tests.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
