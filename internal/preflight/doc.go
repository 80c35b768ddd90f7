// Package preflight provides readiness checks for the filesystem paths and
// download sources the patcher and DLC generator depend on.
//
// These checks run in two contexts:
//   - The patcher and the DLC generator call them right before touching a
//     game install so permission problems surface before any file changes.
//   - "paradox-patch patch --check" runs them without modifying anything and
//     prints each Result.
package preflight
