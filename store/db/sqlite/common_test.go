package sqlite

import (
	"testing"
)

func TestMarshalStringList(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want string
	}{
		{
			name: "Nil stored as empty list",
			list: nil,
			want: "[]",
		},
		{
			name: "Empty list",
			list: []string{},
			want: "[]",
		},
		{
			name: "Values",
			list: []string{"books", "music"},
			want: `["books","music"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marshalStringList(tt.list); got != tt.want {
				t.Errorf("marshalStringList() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStringList(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "Empty column",
			data: "",
			want: []string{},
		},
		{
			name: "Malformed column",
			data: "{not json",
			want: []string{},
		},
		{
			name: "Values",
			data: `["books","music"]`,
			want: []string{"books", "music"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unmarshalStringList(tt.data)
			if len(got) != len(tt.want) {
				t.Fatalf("unmarshalStringList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unmarshalStringList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(3); got != "?, ?, ?" {
		t.Errorf("placeholders(3) = %q, want %q", got, "?, ?, ?")
	}
}
