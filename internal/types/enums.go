package types

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

type EntryType string

const (
	EntryTypeFile   EntryType = "file"
	EntryTypeFolder EntryType = "folder"
)

// DateField selects which timestamp on an artifact entry drives the
// age calculation.
type DateField string

const (
	DateFieldCreated  DateField = "created"
	DateFieldModified DateField = "modified"
	DateFieldUpdated  DateField = "updated"
)

// ParseDateField maps a user-supplied value onto a DateField. An empty
// value selects the created timestamp.
func ParseDateField(value string) (DateField, error) {
	switch DateField(strings.ToLower(strings.TrimSpace(value))) {
	case "", DateFieldCreated:
		return DateFieldCreated, nil
	case DateFieldModified:
		return DateFieldModified, nil
	case DateFieldUpdated:
		return DateFieldUpdated, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("date field must be created, modified or updated")
	}
}
