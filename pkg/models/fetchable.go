package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Fetchable is the capability a resource kind implements to take part in the
// generic fetch pipeline: it names its collection endpoint and knows how to
// project itself for display and CSV output.
type Fetchable interface {
	// PathSuffix is the collection endpoint relative to the API base,
	// e.g. "cameras".
	PathSuffix() string
	// Identity is the server-assigned opaque ID.
	Identity() string
	// DisplayName is the human-facing name.
	DisplayName() string
	CSVHeader() string
	CSVRow() string
}

// DecodeList decodes a JSON array into a slice of T. One bad element fails
// the whole decode; there is no partial result.
func DecodeList[T Fetchable](data []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Describe renders the default display form "<name> [<id>]".
func Describe[T Fetchable](r T) string {
	return fmt.Sprintf("%s [%s]", r.DisplayName(), r.Identity())
}

// LessByName orders two resources by name, ascending byte-wise.
func LessByName[T Fetchable](a, b T) bool {
	return a.DisplayName() < b.DisplayName()
}

// EqualByName reports whether two resources compare equal under the default
// ordering. Equality is by name alone: two resources with the same name but
// different IDs are equal. Callers wanting identity comparison must compare
// Identity() themselves.
func EqualByName[T Fetchable](a, b T) bool {
	return a.DisplayName() == b.DisplayName()
}

// SortByName sorts a collection in place, ascending by name. The sort is
// stable so equal-named resources keep their server order.
func SortByName[T Fetchable](list []T) {
	sort.SliceStable(list, func(i, j int) bool {
		return LessByName(list[i], list[j])
	})
}
