// Package diagnostic provides coded per-schema outcomes and the run
// summary for the augmentation driver.
//
// Key capabilities:
//   - One Result per processed schema with a stable outcome code
//   - Error classification that never aborts the surrounding run
//   - A human-readable aggregate summary for CLI output
package diagnostic
