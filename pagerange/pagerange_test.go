package pagerange

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pagesaw/pagesaw/types"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		selection string
		total     int
		want      []int
	}{
		{"2,4-6,1", 10, []int{2, 4, 5, 6, 1}},
		{"1", 1, []int{1}},
		{"1-5", 5, []int{1, 2, 3, 4, 5}},
		{"3-3", 5, []int{3}},
		{" 2 , 4 - 5 ", 5, []int{2, 4, 5}},
		{"1,,2", 5, []int{1, 2}},
		{"2,2,1-2", 5, []int{2, 2, 1, 2}}, // duplicates preserved, token order kept
		{"", 5, nil},
		{" , ,", 5, nil},
	}
	for _, tc := range cases {
		got, err := Parse(tc.selection, tc.total)
		if err != nil {
			t.Errorf("Parse(%q, %d) unexpected error: %v", tc.selection, tc.total, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%q, %d) = %v, want %v", tc.selection, tc.total, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		selection string
		total     int
		sentinel  *types.Error
		token     string
	}{
		{"0", 5, types.ErrInvalidPageNumber, "0"},
		{"6", 5, types.ErrInvalidPageNumber, "6"},
		{"x", 5, types.ErrInvalidPageNumber, "x"},
		{"3-2", 5, types.ErrInvalidRange, "3-2"},
		{"5-9", 5, types.ErrInvalidRange, "5-9"},
		{"0-2", 5, types.ErrInvalidRange, "0-2"},
		{"a-3", 5, types.ErrInvalidRange, "a-3"},
		{"3-b", 5, types.ErrInvalidRange, "3-b"},
		{"1,9-2,4", 10, types.ErrInvalidRange, "9-2"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.selection, tc.total)
		if err == nil {
			t.Errorf("Parse(%q, %d) expected error", tc.selection, tc.total)
			continue
		}
		if !errors.Is(err, tc.sentinel) {
			t.Errorf("Parse(%q, %d) error = %v, want code %s", tc.selection, tc.total, err, tc.sentinel.Code)
		}
		if !strings.Contains(types.UserMessage(err), tc.token) {
			t.Errorf("Parse(%q, %d) message %q should quote token %q", tc.selection, tc.total, types.UserMessage(err), tc.token)
		}
	}
}

func TestParseNoSideEffectsOnError(t *testing.T) {
	// A failing token later in the selection must not yield partial output.
	pages, err := Parse("1,2,99", 5)
	if err == nil {
		t.Fatalf("expected error")
	}
	if pages != nil {
		t.Fatalf("expected nil pages on error, got %v", pages)
	}
}
