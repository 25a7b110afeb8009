package domain

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPart is the ceiling for a single cue number part. Incrementing a part
// that already holds MaxPart leaves it unchanged.
const MaxPart = math.MaxUint32

// ErrInvalidCueNumber indicates a cue number string could not be parsed.
var ErrInvalidCueNumber = errors.New("invalid cue number")

// unsetGlyph is rendered in place of a part that has no number.
const unsetGlyph = "_"

// Part is one level of a cue number. The zero value is unset.
type Part struct {
	value uint32
	set   bool
}

// Unset is the part with no number.
var Unset = Part{}

// Num returns a part holding n.
func Num(n uint32) Part {
	return Part{value: n, set: true}
}

// IsSet reports whether the part holds a number.
func (p Part) IsSet() bool {
	return p.set
}

// Value returns the number and whether it is set.
func (p Part) Value() (uint32, bool) {
	return p.value, p.set
}

// String renders the decimal value, or "_" when unset.
func (p Part) String() string {
	if !p.set {
		return unsetGlyph
	}
	return strconv.FormatUint(uint64(p.value), 10)
}

func (p Part) increment() Part {
	switch {
	case !p.set:
		return Num(1)
	case p.value == MaxPart:
		return p
	default:
		return Num(p.value + 1)
	}
}

// decrement clears the part instead of going below 1.
func (p Part) decrement() Part {
	switch {
	case !p.set:
		return p
	case p.value <= 1:
		return Unset
	default:
		return Num(p.value - 1)
	}
}

// compareParts orders any set part before an unset one.
func compareParts(a, b Part) int {
	switch {
	case !a.set && !b.set:
		return 0
	case !a.set:
		return 1
	case !b.set:
		return -1
	}
	return cmp.Compare(a.value, b.value)
}

// compareVariants orders secondaries under a shared primary: an unset
// secondary is the base cue and sorts first.
func compareVariants(a, b Part) int {
	switch {
	case !a.set && !b.set:
		return 0
	case !a.set:
		return -1
	case !b.set:
		return 1
	}
	return cmp.Compare(a.value, b.value)
}

// CueNumber is the two-level key a cue is displayed and compared by.
// It is independent of where the cue sits in the list.
//
// A cue with only a primary number is the base cue for that number and sorts
// before every secondary variant of it (5 < 5.1 < 5.7 < 6). A fully unset
// number sorts after everything else.
type CueNumber struct {
	Primary   Part
	Secondary Part
}

// NewCueNumber returns a number with both parts set.
func NewCueNumber(primary, secondary uint32) CueNumber {
	return CueNumber{Primary: Num(primary), Secondary: Num(secondary)}
}

// PrimaryNumber returns a number with only the primary part set.
func PrimaryNumber(primary uint32) CueNumber {
	return CueNumber{Primary: Num(primary)}
}

// Compare returns -1 if a sorts before b, +1 if after, and 0 if they are equal.
// The primary part decides first, with an unset primary last. Between equal
// set primaries the base cue (no secondary) comes first, then the variants by
// secondary: 5 < 5.3 < 5.7 < 6. When neither primary is set the secondary
// decides alone, unset last: _.1 < _.
func Compare(a, b CueNumber) int {
	if c := compareParts(a.Primary, b.Primary); c != 0 {
		return c
	}
	if a.Primary.set {
		return compareVariants(a.Secondary, b.Secondary)
	}
	return compareParts(a.Secondary, b.Secondary)
}

// Compare compares n with other. See the package-level Compare.
func (n CueNumber) Compare(other CueNumber) int {
	return Compare(n, other)
}

// Less reports whether n sorts before other.
func (n CueNumber) Less(other CueNumber) bool {
	return Compare(n, other) < 0
}

// IsUnset reports whether neither part is set.
func (n CueNumber) IsUnset() bool {
	return !n.Primary.set && !n.Secondary.set
}

// String renders the primary part only: "_" when unset, otherwise its value.
func (n CueNumber) String() string {
	return n.Primary.String()
}

// Dotted renders both parts as "primary.secondary", dropping the secondary
// when it is unset: "5", "5.3", "_.3", "_".
func (n CueNumber) Dotted() string {
	if !n.Secondary.set {
		return n.Primary.String()
	}
	return n.Primary.String() + "." + n.Secondary.String()
}

// Increment sets an unset primary to 1, otherwise adds one, saturating at MaxPart.
func (n CueNumber) Increment() CueNumber {
	n.Primary = n.Primary.increment()
	return n
}

// Decrement subtracts one from the primary. A primary of 1 becomes unset;
// an unset primary stays unset.
func (n CueNumber) Decrement() CueNumber {
	n.Primary = n.Primary.decrement()
	return n
}

// IncrementSecondary applies the Increment rule to the secondary part.
func (n CueNumber) IncrementSecondary() CueNumber {
	n.Secondary = n.Secondary.increment()
	return n
}

// DecrementSecondary applies the Decrement rule to the secondary part.
func (n CueNumber) DecrementSecondary() CueNumber {
	n.Secondary = n.Secondary.decrement()
	return n
}

// DisplayString is the label a UI shows for a cue number.
func DisplayString(n CueNumber) string {
	return n.String()
}

// ParseCueNumber parses the Dotted form. An empty string or "_" yields an
// unset number.
func ParseCueNumber(s string) (CueNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CueNumber{}, nil
	}

	primary, secondary, hasSecondary := strings.Cut(s, ".")

	var n CueNumber
	var err error
	if n.Primary, err = parsePart(primary); err != nil {
		return CueNumber{}, fmt.Errorf("%w %q: %v", ErrInvalidCueNumber, s, err)
	}
	if hasSecondary {
		if secondary == "" {
			return CueNumber{}, fmt.Errorf("%w %q: empty secondary", ErrInvalidCueNumber, s)
		}
		if n.Secondary, err = parsePart(secondary); err != nil {
			return CueNumber{}, fmt.Errorf("%w %q: %v", ErrInvalidCueNumber, s, err)
		}
	}
	return n, nil
}

func parsePart(s string) (Part, error) {
	if s == unsetGlyph {
		return Unset, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Unset, err
	}
	return Num(uint32(v)), nil
}
