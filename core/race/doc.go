// Package race turns a race and its roster into a heat card, records finishing
// positions and computes standings.
package race
