// Package diagnostic carries user-facing error context for malformed input
// files and renders it with a source excerpt.
//
// A Diagnostic holds the file path, the complete file text and an optional
// byte span. Render prints the offending line with a caret underline under
// the span, or a short excerpt of the file when no span is known.
package diagnostic
