package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/unitfx/unitfx/label"
)

type jsonSnapshot struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// decodeJSON handles a single snapshot object or an array of them.
func decodeJSON() decodeFunc {
	return func(b []byte, iterFunc func(s Snapshot) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}

		var raw []jsonSnapshot

		if bytes.HasPrefix(bytes.TrimLeft(b, " \t\r\n"), []byte("[")) {
			if err := json.Unmarshal(b, &raw); err != nil {
				return fmt.Errorf("%w: %v", errDecodeToken, err)
			}
		} else {
			var one jsonSnapshot
			if err := json.Unmarshal(b, &one); err != nil {
				return fmt.Errorf("%w: %v", errDecodeToken, err)
			}

			raw = append(raw, one)
		}

		for _, entry := range raw {
			snap, err := entry.expand()
			if err != nil {
				return err
			}

			if err := iterFunc(snap); err != nil {
				return fmt.Errorf("handle func: %w", err)
			}
		}

		return nil
	}
}

func (j jsonSnapshot) expand() (Snapshot, error) {
	t, err := time.Parse(DateLayout, j.Date)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", errAttributeNotValid, err)
	}

	if !label.Valid(j.Base) {
		return Snapshot{}, fmt.Errorf("%w: %q", label.ErrInvalidCode, j.Base)
	}

	snap := Snapshot{
		Date:  t,
		Base:  label.Symbol(j.Base),
		Rates: make(map[label.Symbol]float64, len(j.Rates)),
	}

	for code, r := range j.Rates {
		sym := label.Symbol(code)
		if _, ok := label.Currencies[sym]; !ok {
			continue
		}

		if r <= 0 {
			return Snapshot{}, fmt.Errorf("%w: rate %s=%v", errAttributeNotValid, code, r)
		}

		snap.Rates[sym] = r
	}

	return snap, nil
}
