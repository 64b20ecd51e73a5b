package snapshot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unitfx/unitfx/label"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		source  string
		wantLen int
		want    []Snapshot
		wantErr error
	}{
		{
			name:    "test_single_object",
			source:  `{"date":"2021-07-01","base":"EUR","rates":{"USD":1.164151,"BRL":6.685598}}`,
			wantLen: 1,
			want: []Snapshot{
				{
					Date: mustDate("2021-07-01"),
					Base: label.EUR,
					Rates: map[label.Symbol]float64{
						label.USD: 1.164151,
						label.BRL: 6.685598,
					},
				},
			},
		},
		{
			name: "test_array",
			source: `[
				{"date":"2021-07-01","base":"EUR","rates":{"USD":1.164151}},
				{"date":"2021-07-02","base":"EUR","rates":{"USD":1.169}}
			]`,
			wantLen: 2,
		},
		{
			name:    "test_unknown_symbol_skipped",
			source:  `{"date":"2021-07-01","base":"EUR","rates":{"USD":1.164151,"XXX":42}}`,
			wantLen: 1,
			want: []Snapshot{
				{
					Date: mustDate("2021-07-01"),
					Base: label.EUR,
					Rates: map[label.Symbol]float64{
						label.USD: 1.164151,
					},
				},
			},
		},
		{
			name:    "test_bad_date",
			source:  `{"date":"01 July 2021","base":"EUR","rates":{"USD":1.164151}}`,
			wantErr: errAttributeNotValid,
		},
		{
			name:    "test_bad_base",
			source:  `{"date":"2021-07-01","base":"eur","rates":{"USD":1.164151}}`,
			wantErr: label.ErrInvalidCode,
		},
		{
			name:    "test_non_positive_rate",
			source:  `{"date":"2021-07-01","base":"EUR","rates":{"USD":-1}}`,
			wantErr: errAttributeNotValid,
		},
		{
			name:    "test_broken_markup",
			source:  `{"date":`,
			wantErr: errDecodeToken,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []Snapshot

			err := decodeJSON()([]byte(tc.source), func(s Snapshot) error {
				got = append(got, s)

				return nil
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("got %v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			if diff := cmp.Diff(tc.wantLen, len(got)); diff != "" {
				t.Errorf("snapshot count mismatch (-want, +got):\n%s", diff)
			}

			if tc.want != nil {
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("snapshots mismatch (-want, +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecodeJSONMissingIterFunc(t *testing.T) {
	t.Parallel()

	if err := decodeJSON()([]byte(`{}`), nil); !errors.Is(err, errMissingIterFunc) {
		t.Errorf("got %v, want errMissingIterFunc", err)
	}
}
