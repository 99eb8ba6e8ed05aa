package docgen

import "errors"

var (
	// ErrMissingMethod is returned when a schema has no HTTP method to derive an identity from.
	ErrMissingMethod = errors.New("schema method is empty")
	// ErrMissingPath is returned when a schema has no path to derive an identity from.
	ErrMissingPath = errors.New("schema path is empty")
	// ErrUnknownType is returned when a parameter references a type absent from the type mapping.
	ErrUnknownType = errors.New("unknown type")
	// ErrDuplicateIdentifier is returned when two schemas derive the same navigation anchor.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrNilDocs is returned when the assembler is handed no data model.
	ErrNilDocs = errors.New("docs data model is nil")
)
