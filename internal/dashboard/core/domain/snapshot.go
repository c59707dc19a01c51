package domain

import (
	"errors"
	"fmt"
)

// ErrFetchFailure covers every way a summary fetch can fail: transport
// errors, non-2xx responses and bodies of the wrong shape.
var ErrFetchFailure = errors.New("fetch failure")

const LoadingText = "Loading..."

type FieldStatus int

const (
	FieldLoading FieldStatus = iota
	FieldReady
)

// Field is one summary value. Value is the display text and is only
// meaningful once Status is FieldReady; it may legitimately be empty.
type Field struct {
	Status FieldStatus
	Value  string
}

func Ready(value string) Field {
	return Field{Status: FieldReady, Value: value}
}

func (f Field) IsReady() bool {
	return f.Status == FieldReady
}

// Snapshot holds the dashboard values of one activation. The zero value has
// every field loading.
type Snapshot struct {
	CompletedCount           Field
	AverageDurationPerUser   Field
	AverageDurationCompleted Field
}

// Lines renders the snapshot, one line per field, in display order.
func (s Snapshot) Lines() []string {
	return []string{
		renderField("Completed Users Count", s.CompletedCount),
		renderField("Average Duration", s.AverageDurationPerUser),
		renderField("Average Duration Completed", s.AverageDurationCompleted),
	}
}

// Complete reports whether every field has resolved.
func (s Snapshot) Complete() bool {
	return s.CompletedCount.IsReady() &&
		s.AverageDurationPerUser.IsReady() &&
		s.AverageDurationCompleted.IsReady()
}

func renderField(label string, f Field) string {
	if !f.IsReady() {
		return LoadingText
	}
	return fmt.Sprintf("%s: %s", label, f.Value)
}
