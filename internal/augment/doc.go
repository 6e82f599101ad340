// Package augment performs the structural mutation of generated model
// sources: it injects relationship fields, registration vars, and
// accessor methods described by normalized descriptors.
//
// Key properties:
//   - Idempotent: a descriptor whose field already exists on the primary
//     struct is skipped, so re-running on augmented output is a no-op.
//   - Non-destructive: existing members are never touched; new members
//     are appended after them.
//   - Typed construction: members are built as go/ast nodes, never by
//     textual interpolation, so the output is guaranteed to re-parse.
//
// The parser/printer capability is the injectable Syntax seam; GoSyntax
// is the standard-library implementation used in production.
package augment
