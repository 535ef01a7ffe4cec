package rtm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
)

// ErrMalformed is returned when the export cannot be parsed.
var ErrMalformed = errors.New("malformed export")

// Decode reads a complete export from r and validates it. Any failure aborts
// the whole run; nothing is returned for partially readable input.
func Decode(r io.Reader) (*Export, error) {
	var e Export
	dec := json.NewDecoder(r)
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the export object", ErrMalformed)
	}

	if err := Validate(&e); err != nil {
		return nil, err
	}

	return &e, nil
}

// Validate checks the fields every later stage relies on. Every task must
// carry an id, since derived identifiers and RELATED-TO links are built from
// it; all offending records are reported at once.
func Validate(e *Export) error {
	var errs criterio.FieldErrorsBuilder

	for i, l := range e.Lists {
		if l.ID == "" {
			errs = errs.Append(fmt.Sprintf("lists[%d].id", i), fmt.Errorf("id is required"))
		}
	}

	for i, t := range e.Tasks {
		if t.ID == "" {
			errs = errs.Append(fmt.Sprintf("tasks[%d].id", i), fmt.Errorf("id is required"))
		}
	}

	return errs.ToError()
}
