package core

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are structurally equal.
// Source locations are ignored at every depth.
func Equal(a, b Node) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an == bn
	}
	return a.equal(b)
}

// Hash returns a structural hash consistent with Equal.
func Hash(n Node) uint64 {
	h := &hasher{d: xxhash.New()}
	h.node(n)
	return h.d.Sum64()
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func equalSlices[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// hasher feeds node fields into an xxhash digest.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// tag starts a variant so that variants with identical fields hash apart.
func (h *hasher) tag(name string) {
	h.str(name)
}

func (h *hasher) str(s string) {
	h.int(len(s))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) int(v int) {
	h.uint(uint64(v))
}

func (h *hasher) uint(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) float(v float64) {
	h.uint(math.Float64bits(v))
}

func (h *hasher) bool(v bool) {
	if v {
		h.uint(1)
		return
	}
	h.uint(0)
}

func (h *hasher) node(n Node) {
	if isNil(n) {
		h.tag("<nil>")
		return
	}
	n.hash(h)
}

func hashSlice[T Node](h *hasher, nodes []T) {
	h.int(len(nodes))
	for _, n := range nodes {
		h.node(n)
	}
}
