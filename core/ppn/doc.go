// Package ppn builds race heat schedules for a fixed number of lanes.
//
// A schedule is produced in two steps. Build expands a row of the static
// generator table into a cyclic heat matrix where every competitor starts
// exactly one heat per round. Reorder then walks the matrix greedily and picks,
// for each output position, the heat that best satisfies three weighted goals:
// keep the per-competitor race counts even, avoid putting the same competitor
// in consecutive heats and avoid the same competitor holding the same lane in
// consecutive heats.
//
// Scheduler bundles both steps behind input validation. Generate is the
// re-entrant form used by the HTTP and CLI layers.
package ppn
