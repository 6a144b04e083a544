// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition
//     site; Build attaches context (record index, user id) via %w.
//   - Build MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrUnknownKind indicates an Interaction whose Kind lies outside the
// closed InteractionKind enumeration. Classification: validation error
// (records). Usage: if errors.Is(err, ErrUnknownKind) { /* reject feed */ }.
var ErrUnknownKind = errors.New("builder: unknown interaction kind")

// ErrNegativeActivity indicates a user's activity count below zero in
// the roster passed to Build. Activity counts are post tallies and can
// never be negative; a negative value means the roster is corrupt.
// Usage: if errors.Is(err, ErrNegativeActivity) { /* rebuild roster */ }.
var ErrNegativeActivity = errors.New("builder: negative activity count")
