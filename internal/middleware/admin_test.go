package middleware

import (
	"reflect"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a@b.com", []string{"a@b.com"}},
		{"a@b.com, c@d.com ,", []string{"a@b.com", "c@d.com"}},
		{" , ", []string{}},
	}
	for _, tt := range tests {
		if got := parseCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCSV(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	list := []string{"one", "two"}
	if !contains(list, "two") {
		t.Error("contains should find present value")
	}
	if contains(list, "three") {
		t.Error("contains should not find absent value")
	}
	if contains(nil, "") {
		t.Error("contains on nil list should be false")
	}
}
