// Package particles owns the particle ensemble and the per-frame physics
// kernel.
//
// The ensemble is three parallel flat arrays (position, velocity, rest
// position, 3 floats per particle) sharing one rest-shape template. Each
// tick the simulator damps velocity, applies the force regime selected by
// the committed gesture, overlays any active shockwave, clamps speed and
// integrates position. Particles never interact with each other, so the
// per-particle loop is split across workers purely for throughput;
// correctness never depends on ordering between particles.
package particles
