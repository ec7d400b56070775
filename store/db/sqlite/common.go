package sqlite

import (
	"encoding/json"
	"strings"
)

// placeholder returns a placeholder for SQLite (uses ?)
func placeholder(int) string {
	return "?"
}

// placeholders returns n placeholders for SQLite
func placeholders(n int) string {
	list := []string{}
	for i := 0; i < n; i++ {
		list = append(list, placeholder(i+1))
	}
	return strings.Join(list, ", ")
}

// marshalStringList serializes a string list to its JSON column form.
// Nil lists are stored as empty lists.
func marshalStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// unmarshalStringList deserializes a JSON column into a string list.
func unmarshalStringList(data string) []string {
	list := []string{}
	if data == "" {
		return list
	}
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return []string{}
	}
	return list
}
