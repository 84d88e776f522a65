package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// Source produces uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// SecureSource draws from crypto/rand. It is safe for concurrent use.
var SecureSource Source = secureSource{}

type secureSource struct{}

func (secureSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic Source backed by a ChaCha20 keystream.
// Two sources built from the same seed yield the same sequence.
// It is not safe for concurrent use.
type SeededSource struct {
	stream *chacha20.Cipher
	buf    [8]byte
}

// NewSeededSource keys a ChaCha20 stream with the SHA-256 digest of seed.
func NewSeededSource(seed uint64) (*SeededSource, error) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], seed)
	key := sha256.Sum256(raw[:])
	nonce := make([]byte, chacha20.NonceSize)

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}
	return &SeededSource{stream: stream}, nil
}

func (s *SeededSource) next() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Intn uses rejection sampling so every value in [0, n) is equally likely.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0)%bound+1)%bound
	for {
		v := s.next()
		if v <= limit {
			return int(v % bound), nil
		}
	}
}
