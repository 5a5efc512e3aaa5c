package random

import (
	"crypto/sha512"
	"io"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

type seededReader struct {
	mtx    sync.Mutex
	stream *chacha20.Cipher
}

// NewSeededReader returns a deterministic stream of bytes: the ChaCha20
// keystream under the key SHA-512/256(seed) and an all-zero nonce.
// Equal seeds give equal streams. It is safe for concurrent use, but the
// interleaving of concurrent reads is not reproducible.
func NewSeededReader(seed []byte) io.Reader {
	key := sha512.Sum512_256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(errors.Wrap(err, "NewSeededReader"))
	}
	return &seededReader{stream: stream}
}

func (r *seededReader) Read(p []byte) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
