package snapshot

import "errors"

var (
	errDecodeToken       = errors.New("decoding of the snapshot failed")
	errAttributeNotValid = errors.New("attr is not valid")
	errMissingIterFunc   = errors.New("missing iter function")
	errUnknownFormat     = errors.New("unknown snapshot file format")
)

// DateLayout is the date format of snapshot files and store keys.
const DateLayout = "2006-01-02"

// decodeFunc for parsing snapshot data and processing it in streaming mode
type decodeFunc func(b []byte, iterFunc func(s Snapshot) error) error
