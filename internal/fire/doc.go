// Package fire implements the heat-diffusion flame simulation.
//
// Each [Simulator.Step] advances a persistent per-cell heat field
// through three phases and renders it to colors:
//
//   - Cooling: every cell loses a random amount scaled by the cooling
//     rate, floored at zero
//   - Diffusion: heat smears toward higher indices, so flames appear
//     to rise away from the strip origin
//   - Sparking: with a tunable probability, a cell near the origin
//     receives a fresh burst of heat, ceiling 255
//
// All arithmetic saturates; a heat cell can never leave [0,255]. Color
// mapping goes through [HeatColor], a four-band black-body style ramp.
//
// The simulator is deterministic for a fixed seed:
//
//	rng := rand.New(rand.NewSource(42))
//	sim := fire.NewSimulator(60, false, rng)
//	frame := sim.Step(120, 55)
package fire
