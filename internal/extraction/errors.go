// Package extraction is the public entry point of the resume parsing
// pipeline: it decodes the document, normalizes the text, fans out to the
// field and section extractors and scores the assembled result.
package extraction

import "fmt"

// UnreadableDocumentError is the single failure mode of the pipeline: the
// document produced too little text to be a resume (empty, corrupt or
// image-only). Every other condition degrades to missing fields instead of
// an error.
type UnreadableDocumentError struct {
	Length int
	Cause  error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document unreadable: %v", e.Cause)
	}
	return fmt.Sprintf("document unreadable: extracted text too short (%d chars)", e.Length)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}
