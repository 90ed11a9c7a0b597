package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.New(rand.NewSource(entropySeed())), 0)
)

// entropySeed draws the RNG seed from crypto/rand, falling back to the
// clock if the system source is unavailable.
func entropySeed() int64 {
	var seed int64
	if err := binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed); err != nil || seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

// New returns a ULID string. ULIDs sort by generation time, so trade logs
// and journal indexes stay naturally ordered; the monotonic reader keeps
// IDs minted within the same millisecond strictly increasing.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		panic(err)
	}
	return id.String()
}
