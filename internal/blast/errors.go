package blast

import "errors"

// ErrSequenceTooShort is returned when a query sequence, after cleaning,
// is shorter than MinSequenceLength.
var ErrSequenceTooShort = errors.New("sequence too short")
