package domain

import "fmt"

// DataSourceError means the backing job data was missing, unreadable, or
// structurally malformed. It is fatal to the call that triggered the load;
// no partial result is returned alongside it.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("job data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ValidationError identifies a single bad job record: a missing required field
// or a skill entry that is not a string. A bad record fails the whole load,
// it is never silently skipped.
type ValidationError struct {
	JobID  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	id := e.JobID
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Sprintf("job %s: invalid %s: %s", id, e.Field, e.Reason)
}
