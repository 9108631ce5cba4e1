// Package easing evaluates and composes normalized interpolation curves.
//
// An easing function maps progress through time t in [0, 1] to progress
// along the interpolation. Every curve built by this package satisfies
// f(0) = 0 and f(1) = 1; intermediate values may leave [0, 1] (the spring
// curve overshoots). The package defines:
//
//   - [Func]: an immutable tagged value describing a curve, evaluated by [Func.At]
//   - primitives: [Identity], [PowerIn], [PowerOut], [Smoothstep], [Smootherstep],
//     [CosineInOut], [CircleIn], [CircleOut], [Spring]
//   - combinators: [Concat], [FirstHalf], [SecondHalf]
//   - [Registry]: the name to curve mapping consulted by the generators
//
// # Example
//
//	reg := easing.NewRegistry(easing.DefaultOptions())
//	x, err := reg.Evaluate("ease-in-out", 0.25)
//
// [Func.At] performs no bounds checking. [Registry.Evaluate] rejects t
// outside [0, 1] with a [DomainError].
package easing
