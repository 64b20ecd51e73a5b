package unitfx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unitfx/unitfx/label"
)

func TestNewPair(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		base    string
		quote   string
		wantErr bool
	}{
		{
			name:  "test_valid",
			base:  "EUR",
			quote: "USD",
		},
		{
			name:  "test_valid_long_code",
			base:  "USDT",
			quote: "EUR",
		},
		{
			name:    "test_bad_base",
			base:    "eur",
			quote:   "USD",
			wantErr: true,
		},
		{
			name:    "test_bad_quote",
			base:    "EUR",
			quote:   "US",
			wantErr: true,
		},
		{
			name:    "test_both_bad",
			base:    "e",
			quote:   "u",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pair, err := NewPair(tc.base, tc.quote)
			if tc.wantErr {
				if !errors.Is(err, label.ErrInvalidCode) {
					t.Errorf("got %v, want ErrInvalidCode", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewPair: %v", err)
			}

			if diff := cmp.Diff(tc.base, string(pair.Base())); diff != "" {
				t.Errorf("base mismatch (-want, +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.quote, string(pair.Quote())); diff != "" {
				t.Errorf("quote mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPairIsOrdered(t *testing.T) {
	t.Parallel()

	forward, err := NewPair("EUR", "USD")
	if err != nil {
		t.Fatalf("NewPair: %v", err)
	}

	backward, err := NewPair("USD", "EUR")
	if err != nil {
		t.Fatalf("NewPair: %v", err)
	}

	if forward == backward {
		t.Error("EUR/USD and USD/EUR compare equal")
	}
}

func TestNewRate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{
			name:  "test_positive",
			value: 1.164151,
		},
		{
			name:  "test_integral",
			value: 7,
		},
		{
			name:    "test_zero",
			value:   0,
			wantErr: true,
		},
		{
			name:    "test_negative",
			value:   -0.5,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rate, err := NewRate(tc.value)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidRate) {
					t.Errorf("got %v, want ErrInvalidRate", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewRate: %v", err)
			}

			if diff := cmp.Diff(tc.value, rate.Value()); diff != "" {
				t.Errorf("value mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNewMarket(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		entries []Entry
		wantLen int
		wantErr error
	}{
		{
			name:    "test_single_entry",
			entries: []Entry{{Base: "EUR", Quote: "USD", Rate: 1.164151}},
			wantLen: 1,
		},
		{
			name: "test_sequence",
			entries: []Entry{
				{Base: "EUR", Quote: "USD", Rate: 1.164151},
				{Base: "USD", Quote: "BRL", Rate: 5.5},
			},
			wantLen: 2,
		},
		{
			name: "test_last_write_wins",
			entries: []Entry{
				{Base: "EUR", Quote: "USD", Rate: 1.1},
				{Base: "EUR", Quote: "USD", Rate: 1.2},
			},
			wantLen: 1,
		},
		{
			name: "test_invalid_code_fails_whole_build",
			entries: []Entry{
				{Base: "EUR", Quote: "USD", Rate: 1.1},
				{Base: "eur", Quote: "USD", Rate: 1.2},
			},
			wantErr: label.ErrInvalidCode,
		},
		{
			name: "test_invalid_rate_fails_whole_build",
			entries: []Entry{
				{Base: "EUR", Quote: "USD", Rate: 1.1},
				{Base: "USD", Quote: "BRL", Rate: 0},
			},
			wantErr: ErrInvalidRate,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewMarket(tc.entries...)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("got %v, want %v", err, tc.wantErr)
				}

				if m != nil {
					t.Error("failed build returned a partial market")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewMarket: %v", err)
			}

			if diff := cmp.Diff(tc.wantLen, len(m)); diff != "" {
				t.Errorf("market size mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNewMarketLastWriteWins(t *testing.T) {
	t.Parallel()

	m, err := NewMarket(
		Entry{Base: "EUR", Quote: "USD", Rate: 1.1},
		Entry{Base: "EUR", Quote: "USD", Rate: 1.2},
	)
	if err != nil {
		t.Fatalf("NewMarket: %v", err)
	}

	rate, ok := m.Rate(label.EUR, label.USD)
	if !ok {
		t.Fatal("EUR/USD missing")
	}

	if diff := cmp.Diff(1.2, rate.Value()); diff != "" {
		t.Errorf("rate mismatch (-want, +got):\n%s", diff)
	}
}

func TestNewMarketFromMap(t *testing.T) {
	t.Parallel()

	m, err := NewMarketFromMap(map[string]float64{
		"EUR/USD": 1.164151,
		"USD/BRL": 5.5,
	})
	if err != nil {
		t.Fatalf("NewMarketFromMap: %v", err)
	}

	rate, ok := m.Rate(label.EUR, label.USD)
	if !ok {
		t.Fatal("EUR/USD missing")
	}

	if diff := cmp.Diff(1.164151, rate.Value()); diff != "" {
		t.Errorf("rate mismatch (-want, +got):\n%s", diff)
	}

	if _, err := NewMarketFromMap(map[string]float64{"EURUSD": 1.1}); !errors.Is(err, label.ErrInvalidCode) {
		t.Errorf("got %v, want ErrInvalidCode for missing separator", err)
	}
}

func TestNewMarketFromBase(t *testing.T) {
	t.Parallel()

	m, err := NewMarketFromBase("EUR", map[string]float64{
		"USD": 1.164151,
		"BRL": 6.685598,
	})
	if err != nil {
		t.Fatalf("NewMarketFromBase: %v", err)
	}

	if diff := cmp.Diff(2, len(m)); diff != "" {
		t.Errorf("market size mismatch (-want, +got):\n%s", diff)
	}

	if _, ok := m.Rate(label.EUR, label.BRL); !ok {
		t.Error("EUR/BRL missing")
	}
}

func TestMarketSymbols(t *testing.T) {
	t.Parallel()

	m, err := NewMarket(
		Entry{Base: "USD", Quote: "BRL", Rate: 5.5},
		Entry{Base: "EUR", Quote: "USD", Rate: 1.1},
	)
	if err != nil {
		t.Fatalf("NewMarket: %v", err)
	}

	want := []label.Symbol{label.BRL, label.EUR, label.USD}
	if diff := cmp.Diff(want, m.Symbols()); diff != "" {
		t.Errorf("symbols mismatch (-want, +got):\n%s", diff)
	}
}
