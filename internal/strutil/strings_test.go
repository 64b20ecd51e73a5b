package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveExtraSpaces(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_not_modifying",
			source: "Swiss Franc",
			want:   "Swiss Franc",
		},
		{
			name:   "test_extra_space_inner",
			source: "Swiss  Franc",
			want:   "Swiss Franc",
		},
		{
			name: "test_extra_space_inner_tab",
			source: "Swiss        	Franc",
			want: "Swiss Franc",
		},
		{
			name:   "test_extra_space_inner_outer",
			source: "   Swiss        Franc   ",
			want:   "Swiss Franc",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveExtraSpaces(tc.source)
			if got != tc.want {
				diff := cmp.Diff(tc.want, got)
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveContentIntoBrackets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_remove_round",
			source: "Krone (Danish)",
			want:   "Krone ",
		},
		{
			name:   "test_remove_square",
			source: "Krone [Danish]",
			want:   "Krone ",
		},
		{
			name:   "test_remove_both",
			source: "Danish [old]Krone(DKK)",
			want:   "Danish Krone",
		},
		{
			name:   "test_nothing_to_remove",
			source: "Danish Krone",
			want:   "Danish Krone",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveContentIntoBrackets(tc.source)
			if got != tc.want {
				diff := cmp.Diff(tc.want, got)
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
