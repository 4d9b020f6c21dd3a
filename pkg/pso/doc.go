// Package pso implements particle-swarm minimization over a boxed
// continuous search space.
//
// A swarm of candidate points moves under the standard inertia/cognitive/
// social velocity rule: each particle is pulled toward its own best-known
// position and toward the swarm's best, with random per-particle weighting.
// Positions are clamped to the configured bounds; a dimension with
// Min == Max stays pinned, which is how discrete choices with a single
// option degenerate cleanly.
//
// The swarm state belongs to exactly one Minimize call. Objective
// evaluations within an iteration are independent and may be fanned out
// across workers; results are merged by reduce-to-best, so parallel runs
// are deterministic for a fixed seed and worker-independent.
//
// A run ends for one of three reasons:
//
//   - ReasonConverged: the global best improved by less than Config.MinStep
//     for Config.StallWindow consecutive iterations.
//   - ReasonMaxIterations: the iteration cap was reached.
//   - ReasonCancelled: the context was cancelled; the best point found so
//     far is still returned.
//
// Objectives must map unusable points to +Inf rather than returning errors;
// the optimizer treats the fitness landscape as the only channel for
// per-candidate feedback.
package pso
