package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/lib/pq"
)

// StringList is a list of strings stored as a Postgres text[] column.
// The admin dashboard submits list fields either as JSON arrays or as
// comma-separated strings; both decode into the same slice with segments
// trimmed and empty entries dropped.
type StringList []string

// UnmarshalJSON accepts either ["a","b"] or "a, b".
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalizeList(items)
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return err
	}
	*l = SplitList(csv)
	return nil
}

// SplitList splits a comma-separated string into a trimmed list,
// dropping empty segments.
func SplitList(csv string) StringList {
	return normalizeList(strings.Split(csv, ","))
}

func normalizeList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Join renders the list back into the comma-separated form the admin
// dashboard edits.
func (l StringList) Join() string {
	return strings.Join(l, ", ")
}

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

// GormDataType maps StringList onto a text[] column.
func (StringList) GormDataType() string {
	return "text[]"
}
