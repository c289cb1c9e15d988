package ports

import "encoding/json"

// RecordSource loads raw records from a source (e.g., a JSON or YAML file).
// selector is an optional JSONPath expression picking the records out of an
// API envelope.
type RecordSource interface {
	LoadRecords(path string, selector string) ([]json.RawMessage, error)
}
