package corridor

import "fmt"

// InvalidParameterError reports a clustering parameter outside its valid
// range. Parameters are validated before any processing, so a bad value
// never produces partial output.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// MalformedInputError reports an unparseable input record, identified by
// its 1-based line number in the input file.
type MalformedInputError struct {
	Line   int
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input at line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// DegenerateCorridorError reports a corridor whose member weights sum to
// a non-positive value. Input weights are validated positive, so hitting
// this means an internal invariant was violated.
type DegenerateCorridorError struct {
	ClusterID int
}

func (e *DegenerateCorridorError) Error() string {
	return fmt.Sprintf("cluster %d has non-positive aggregate weight", e.ClusterID)
}
