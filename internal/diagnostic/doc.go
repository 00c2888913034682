// Package diagnostic collects structured warnings and errors raised while
// mapping entities to view models.
//
// Key capabilities:
//   - Degraded-output warnings (missing configuration values, unregistered editors)
//   - Permission-gated omissions (sensitive values hidden from the current user)
//   - Suggestions for near-miss aliases
//   - Error findings folded into a single error for batch callers
package diagnostic
