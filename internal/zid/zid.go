// Package zid implements the ZID identifier: the symbolic reference type
// that threads through every term in the object language. A ZID names
// either a global entity ("Z<n>"), a key within that entity ("Z<n>K<m>"),
// or a bare key shared across entities ("K<m>").
package zid

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a ZID: an ordered pair (z, k) where each component is either
// absent (zero) or a strictly positive number. At least one component is
// present. ID is a plain comparable struct, so it is usable directly as a
// Go map key — no separate Hash method is needed to satisfy the "ordered,
// hashable" requirement.
type ID struct {
	z uint64
	k uint64
}

// Z returns the Z-component and whether it is present.
func (id ID) Z() (uint64, bool) { return id.z, id.z != 0 }

// K returns the K-component and whether it is present.
func (id ID) K() (uint64, bool) { return id.k, id.k != 0 }

// Zero reports whether id is the zero value (no ID ever parses to this;
// it exists only as a sentinel for "absent").
func (id ID) Zero() bool { return id.z == 0 && id.k == 0 }

// FromParts builds an ID from optional components. A component value of 0
// means absent. At least one must be non-zero.
func FromParts(z, k uint64) (ID, error) {
	if z == 0 && k == 0 {
		return ID{}, fmt.Errorf("zid: z and k must not both be absent")
	}
	return ID{z: z, k: k}, nil
}

// MustParse parses text and panics on failure. Reserved for well-known,
// compile-time-constant identifiers (see spec §7: panics are only for
// invariant violations in construction helpers used on literal constants).
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("zid: invalid well-known identifier %q: %v", text, err))
	}
	return id
}

// Parse parses the canonical textual form: an optional "Z<digits>"
// followed by an optional "K<digits>", with at least one part present,
// no leading zeros' worth of a zero value, and no trailing characters.
func Parse(text string) (ID, error) {
	if text == "" {
		return ID{}, fmt.Errorf("zid: empty identifier")
	}

	rest := text
	var z, k uint64
	var haveZ, haveK bool

	if rest[0] == 'Z' {
		rest = rest[1:]
		digits, tail := takeDigits(rest)
		if digits == "" {
			return ID{}, fmt.Errorf("zid: %q: expected digits after Z", text)
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("zid: %q: bad Z component: %w", text, err)
		}
		if n == 0 {
			return ID{}, fmt.Errorf("zid: %q: Z component must be positive", text)
		}
		z, haveZ = n, true
		rest = tail
	}

	if strings.HasPrefix(rest, "K") {
		rest = rest[1:]
		digits, tail := takeDigits(rest)
		if digits == "" {
			return ID{}, fmt.Errorf("zid: %q: expected digits after K", text)
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("zid: %q: bad K component: %w", text, err)
		}
		if n == 0 {
			return ID{}, fmt.Errorf("zid: %q: K component must be positive", text)
		}
		k, haveK = n, true
		rest = tail
	}

	if rest != "" {
		return ID{}, fmt.Errorf("zid: %q: unexpected trailing characters %q", text, rest)
	}
	if !haveZ && !haveK {
		return ID{}, fmt.Errorf("zid: %q: missing leading Z before digits", text)
	}

	return ID{z: z, k: k}, nil
}

// takeDigits splits a leading run of ASCII digits off s, returning the
// digits and the remainder.
func takeDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// String formats id in its canonical textual form.
func (id ID) String() string {
	var b strings.Builder
	if id.z != 0 {
		b.WriteByte('Z')
		b.WriteString(strconv.FormatUint(id.z, 10))
	}
	if id.k != 0 {
		b.WriteByte('K')
		b.WriteString(strconv.FormatUint(id.k, 10))
	}
	return b.String()
}

// Compare implements a total order: lexicographic on (z, k), with absent
// treated as ordering before any present value.
func (id ID) Compare(other ID) int {
	if c := compareOptional(id.z, other.z); c != 0 {
		return c
	}
	return compareOptional(id.k, other.k)
}

// Less reports id < other under Compare's ordering.
func (id ID) Less(other ID) bool { return id.Compare(other) < 0 }

func compareOptional(a, b uint64) int {
	switch {
	case a == b:
		return 0
	case a == 0: // absent < some
		return -1
	case b == 0:
		return 1
	case a < b:
		return -1
	default:
		return 1
	}
}
