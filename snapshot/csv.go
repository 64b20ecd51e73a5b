package snapshot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/unitfx/unitfx/label"
)

// decodeCSV reads a table with a leading Date column and one column per
// quoted currency. The base currency is not part of the file and is
// supplied by the caller.
func decodeCSV(base label.Symbol) decodeFunc {
	return func(b []byte, iterFunc func(s Snapshot) error) error {
		if iterFunc == nil {
			return errMissingIterFunc
		}
		decoder := csv.NewReader(bytes.NewReader(b))
		idx := 0
		var header []string
	TokenLoop:
		for {
			line, err := decoder.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break TokenLoop
				}

				var parseError *csv.ParseError
				if errors.As(err, &parseError) {
					return fmt.Errorf("%w: %v", errDecodeToken, parseError.Error())
				}

				return fmt.Errorf("csv decoder read: %w", err)
			}

			if idx == 0 {
				for n, column := range line {
					token := strings.Trim(column, " \t")
					if n == 0 && token != "Date" {
						return errAttributeNotValid
					}

					header = append(header, token)
				}
				idx += 1
				continue TokenLoop
			}

			snap := Snapshot{Base: base, Rates: make(map[label.Symbol]float64)}

			for n, column := range line {
				token := strings.Trim(column, " \t")
				if token == "" || n >= len(header) {
					continue
				}

				if header[n] == "Date" {
					t, err := time.Parse(DateLayout, token)
					if err != nil {
						return fmt.Errorf("%w: %v", errAttributeNotValid, err)
					}

					snap.Date = t
					continue
				}

				sym := label.Symbol(header[n])
				if _, ok := label.Currencies[sym]; !ok {
					continue
				}

				r, err := strconv.ParseFloat(token, 64)
				if err != nil {
					return fmt.Errorf("%w: %v", errAttributeNotValid, err)
				}

				if r <= 0 {
					return errAttributeNotValid
				}

				snap.Rates[sym] = r
			}

			if err := iterFunc(snap); err != nil {
				return fmt.Errorf("handle func: %w", err)
			}
		}

		return nil
	}
}
