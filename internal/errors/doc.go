// Package errors provides the structured error type used across wizarding-catalog.
//
// Errors carry a Code, a user-facing message, an optional cause and free-form
// metadata. Codes map onto HTTP statuses in both directions so that failures
// from the remote catalog provider and failures returned to our own API
// clients share one vocabulary.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("unknown search type: %s", t)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("slug", slug)
//
// Wrapping errors:
//
//	if err := client.ListSpells(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load spells")
//	}
//
// # HTTP Integration
//
// Provider responses:
//
//	code := errors.FromHTTPStatus(resp.StatusCode())
//
// Our responses:
//
//	w.WriteHeader(errors.HTTPStatus(err))
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - Wrap transport failures with CodeUnavailable
//   - Translate non-2xx provider statuses with FromHTTPStatus
//
// Store/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return Unavailable while the catalog is not loaded
//
// Handler layer:
//   - Render the code and message, never the cause
package errors
