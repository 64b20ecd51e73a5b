package hashio

import (
	"crypto/md5" //nolint
	"crypto/sha1"
	"fmt"
	"hash"
	"io"
)

const size = 512

// ReadAll reads in blocks by buf size and hashes
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if err != nil {
			if err == io.EOF {
				if n > 0 {
					hasher.Write(buf[:n])
				}
				break
			}

			return nil, fmt.Errorf("read: %w", err)
		}

		hasher.Write(buf[:n])
	}

	return hasher.Sum(nil), nil
}

func MD5() func() hash.Hash {
	return func() hash.Hash {
		return md5.New()
	}
}

func SHA1() func() hash.Hash {
	return func() hash.Hash {
		return sha1.New()
	}
}
