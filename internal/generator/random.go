package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source supplies uniformly distributed 32-bit values. GenerateBatch calls it
// from several goroutines.
type Source interface {
	Uint32() (uint32, error)
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand. It holds no state and
// is safe for concurrent use.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random value: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// drawIndex maps one draw into [0, n) by modulo. When n does not divide 2^32
// the low indices are slightly favoured; entropy figures ignore that bias.
func drawIndex(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("draw index: non-positive bound %d", n)
	}
	v, err := src.Uint32()
	if err != nil {
		return 0, err
	}
	return int(v % uint32(n)), nil
}

func drawBit(src Source) (bool, error) {
	v, err := src.Uint32()
	if err != nil {
		return false, err
	}
	return v&1 == 1, nil
}
