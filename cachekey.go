package stepwise

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/aretw0/stepwise/pkg/domain"
)

// CacheKey fingerprints a run. Runs are deterministic, so equal keys always
// produce equal step sequences. Labels are part of the key because they
// appear in step messages.
func CacheKey(algorithm string, g *domain.Graph, start int) string {
	h := sha256.New()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	write(algorithm)
	write(strconv.Itoa(start))
	for _, l := range g.Labels() {
		write(l)
	}
	write("|")
	for _, e := range g.Edges() {
		write(strconv.Itoa(e.U))
		write(strconv.Itoa(e.V))
		write(strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	return hex.EncodeToString(h.Sum(nil))
}
