// Package validate provides input validation at worthit's boundaries: the
// CLI, the MCP server and the HTTP API.
//
// The duration parser itself never fails loudly. Validation here covers what
// sits around it: phrase size limits, fields that could not be parsed, and
// ROI inputs that make no sense together.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrUnparsable, ErrPhraseTooLong, etc.). Use errors.Is() for type-safe
// error checking:
//
//	if errors.Is(err, validate.ErrUnparsable) {
//	    // ask the user to rephrase
//	}
package validate
