// Package gen renders the label package tables from the embedded ISO-4217
// code list and CLDR display names.
package gen

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/unitfx/unitfx/internal/hashio"
	"github.com/unitfx/unitfx/internal/strutil"
)

const (
	AssetsCurrencyCodesFile = "currency_codes.csv"
	AssetsCurrencyNamesFile = "currency_names.json"
	SymbolGenFileName       = "symbol"
	CurrencyGenFileName     = "currency"
)

const SuffixGenFileName = "_gen.go"

const (
	symbolTemplate   = "symbol.tmpl"
	currencyTemplate = "currency.tmpl"
)

// ErrHashingContentEqual signals that regeneration was skipped because the
// output would be identical to the existing file.
var ErrHashingContentEqual = errors.New("hash of the generated file is equivalent to the previous version")

var defaultHashTypeFunc = hashio.MD5()

var (
	//go:embed templates/*.tmpl
	templates embed.FS
	//go:embed assets
	assets embed.FS
)

type AssetsMapFunc func(b []byte, filename string) error

func ReadAssets(path string) func(AssetsMapFunc) error {
	return func(mapFunc AssetsMapFunc) error {
		entries, err := assets.ReadDir(path)
		if err != nil {
			return fmt.Errorf("read dir: %w", err)
		}

		for _, entry := range entries {
			b, err := assets.ReadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			if err := mapFunc(b, entry.Name()); err != nil {
				return fmt.Errorf("call mapFunc: %w", err)
			}
		}

		return nil
	}
}

func Template() *template.Template {
	return template.Must(template.New("templates").ParseFS(templates, "templates/*.tmpl"))
}

// Generate renders the label tables into pathTo. A file whose content hash
// matches the previous version is left alone and reported through
// ErrHashingContentEqual inside the returned multierror.
func Generate(pathTo string, hasherFunc func() hash.Hash) error {
	if hasherFunc == nil {
		hasherFunc = defaultHashTypeFunc
	}

	currencies, err := readCurrencies()
	if err != nil {
		return err
	}

	var multiErr multierror.Group

	for _, target := range []struct {
		tmpl string
		file string
	}{
		{tmpl: symbolTemplate, file: SymbolGenFileName},
		{tmpl: currencyTemplate, file: CurrencyGenFileName},
	} {
		target := target
		multiErr.Go(func() error {
			return render(pathTo, target.tmpl, target.file, currencies, hasherFunc)
		})
	}

	if err := multiErr.Wait(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return nil
}

func readCurrencies() ([]Ccy, error) {
	type codeEntry struct {
		number     int
		minorUnits int
	}

	codes := make(map[string]codeEntry)
	var names CurrencyNames

	iterFunc := ReadAssets("assets")

	if err := iterFunc(func(b []byte, filename string) error {
		switch filename {
		case AssetsCurrencyCodesFile:
			records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
			if err != nil {
				return fmt.Errorf("csv read: %w", err)
			}

			for idx, record := range records {
				if idx == 0 || len(record) < 3 {
					continue
				}

				code := record[0]
				if !validCode(code) {
					continue
				}

				number, err := strconv.Atoi(record[1])
				if err != nil {
					return fmt.Errorf("code %s: number: %w", code, err)
				}

				units, err := strconv.Atoi(record[2])
				if err != nil {
					var numErr *strconv.NumError
					if !errors.As(err, &numErr) {
						return fmt.Errorf("code %s: minor units: %w", code, err)
					}
					units = 0
				}

				codes[code] = codeEntry{number: number, minorUnits: units}
			}
		case AssetsCurrencyNamesFile:
			if err := json.Unmarshal(b, &names); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
		default:
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("iterate func: %w", err)
	}

	currencies := make([]Ccy, 0, len(codes))

	for code, entry := range codes {
		name, ok := names.Currencies[code]
		if !ok {
			continue
		}

		displayName := name.DisplayName
		displayName = strutil.RemoveContentIntoBrackets(displayName)
		displayName = strutil.RemoveExtraSpaces(displayName)

		currencies = append(currencies, Ccy{
			Symbol:     code,
			Number:     entry.number,
			MinorUnits: entry.minorUnits,
			Name:       displayName,
			Sign:       name.Sign,
		})
	}

	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].Symbol < currencies[j].Symbol
	})

	return currencies, nil
}

func render(pathTo, tmplName, genName string, currencies []Ccy, hasherFunc func() hash.Hash) error {
	fileName := filepath.Join(pathTo, fmt.Sprintf("%s%s", genName, SuffixGenFileName))

	oldHash, err := hashingFile(fileName, hasherFunc)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("hashingFile: %w", err)
		}
	}

	w := newWriter(bytes.NewBuffer(make([]byte, 0, 512)), Template())

	if err := w.generate(tmplName, struct {
		Currencies []Ccy
	}{
		Currencies: currencies,
	}); err != nil {
		return fmt.Errorf("%s tmpl generate error: %w", tmplName, err)
	}

	if len(oldHash) != 0 {
		newHash, err := hashio.ReadAll(bytes.NewReader(w.buf.Bytes()), hasherFunc())
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		if bytes.Equal(oldHash, newHash) {
			return fmt.Errorf("warning: %w, file: %s", ErrHashingContentEqual, fileName)
		}
	}

	if err := w.flush(fileName); err != nil {
		return fmt.Errorf("save the generated template to a file: %w", err)
	}

	return nil
}

// validCode matches label.Valid; gen cannot import label because label is
// its output.
func validCode(s string) bool {
	if len(s) < 3 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}

func hashingFile(fileName string, hasherFunc func() hash.Hash) ([]byte, error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	b, err := hashio.ReadAll(file, hasherFunc())
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return b, nil
}

func newWriter(buf *bytes.Buffer, t *template.Template) *writer {
	return &writer{buf: buf, t: t}
}

type writer struct {
	buf *bytes.Buffer
	t   *template.Template
}

func (w *writer) flush(fileName string) error {
	if err := os.WriteFile(fileName, w.buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("open file: %w", err)
	}

	return nil
}

func (w *writer) generate(tmplName string, data interface{}) error {
	if err := w.t.ExecuteTemplate(w.buf, tmplName, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}
