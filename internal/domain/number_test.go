package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestNumbers returns one number of every set/unset shape.
func createTestNumbers() []CueNumber {
	return []CueNumber{
		{},
		{Secondary: Num(0)},
		{Secondary: Num(2)},
		{Secondary: Num(9)},
		PrimaryNumber(1),
		NewCueNumber(1, 0),
		NewCueNumber(1, 4),
		PrimaryNumber(5),
		NewCueNumber(5, 3),
		NewCueNumber(5, 7),
		PrimaryNumber(6),
		PrimaryNumber(MaxPart),
		NewCueNumber(MaxPart, MaxPart),
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	numbers := createTestNumbers()

	for _, a := range numbers {
		assert.Equal(t, 0, Compare(a, a), "reflexive: %s", a.Dotted())

		for _, b := range numbers {
			ab, ba := Compare(a, b), Compare(b, a)
			assert.Equal(t, -ab, ba, "antisymmetric: %s vs %s", a.Dotted(), b.Dotted())
			if ab == 0 {
				assert.Equal(t, a, b, "equal only when identical: %s vs %s", a.Dotted(), b.Dotted())
			}

			for _, c := range numbers {
				if Compare(a, b) < 0 && Compare(b, c) < 0 {
					assert.Negative(t, Compare(a, c), "transitive: %s < %s < %s", a.Dotted(), b.Dotted(), c.Dotted())
				}
			}
		}
	}
}

func TestCompare_UnsetPrimarySortsLast(t *testing.T) {
	for _, p := range []uint32{0, 1, 42, MaxPart} {
		for _, sec := range []Part{Unset, Num(0), Num(3)} {
			set := CueNumber{Primary: Num(p), Secondary: sec}
			for _, otherSec := range []Part{Unset, Num(0), Num(3)} {
				unset := CueNumber{Secondary: otherSec}
				assert.True(t, set.Less(unset), "%s < %s", set.Dotted(), unset.Dotted())
			}
		}
	}
}

func TestCompare_SecondaryTieBreak(t *testing.T) {
	chain := []CueNumber{
		PrimaryNumber(5),
		NewCueNumber(5, 3),
		NewCueNumber(5, 7),
		PrimaryNumber(6),
	}

	for i := 0; i < len(chain)-1; i++ {
		assert.Negative(t, Compare(chain[i], chain[i+1]), "%s < %s", chain[i].Dotted(), chain[i+1].Dotted())
	}
}

func TestCompare_BaseCueBeforeVariants(t *testing.T) {
	base := PrimaryNumber(5)
	for _, sec := range []uint32{0, 1, 3, MaxPart} {
		variant := NewCueNumber(5, sec)
		assert.Equal(t, -1, Compare(base, variant), "5 < %s", variant.Dotted())
		assert.Equal(t, 1, Compare(variant, base), "%s > 5", variant.Dotted())
	}

	assert.Negative(t, Compare(NewCueNumber(4, MaxPart), base), "variants stay under their primary")
	assert.Negative(t, Compare(NewCueNumber(5, MaxPart), PrimaryNumber(6)))
}

func TestCompare_UnsetPrimaryFallsBackToSecondary(t *testing.T) {
	assert.Negative(t, Compare(CueNumber{Secondary: Num(2)}, CueNumber{Secondary: Num(9)}))
	assert.Negative(t, Compare(CueNumber{Secondary: Num(9)}, CueNumber{}))
	assert.Equal(t, 0, Compare(CueNumber{}, CueNumber{}))
}

func TestCompare_UsableAsSortKey(t *testing.T) {
	shuffled := []CueNumber{
		{},
		PrimaryNumber(6),
		NewCueNumber(5, 7),
		{Secondary: Num(1)},
		PrimaryNumber(5),
		NewCueNumber(5, 3),
	}

	slices.SortFunc(shuffled, Compare)

	want := []string{"5", "5.3", "5.7", "6", "_.1", "_"}
	got := make([]string, len(shuffled))
	for i, n := range shuffled {
		got[i] = n.Dotted()
	}
	assert.Equal(t, want, got)
}

func TestCueNumber_Display(t *testing.T) {
	assert.Equal(t, "_", DisplayString(CueNumber{}))
	assert.Equal(t, "7", DisplayString(PrimaryNumber(7)))
	assert.Equal(t, "5", DisplayString(NewCueNumber(5, 3)), "secondary is not part of the display string")
	assert.Equal(t, "_", DisplayString(CueNumber{Secondary: Num(3)}))
}

func TestCueNumber_Dotted(t *testing.T) {
	tests := []struct {
		number CueNumber
		want   string
	}{
		{CueNumber{}, "_"},
		{PrimaryNumber(5), "5"},
		{NewCueNumber(5, 3), "5.3"},
		{CueNumber{Secondary: Num(3)}, "_.3"},
		{NewCueNumber(12, 0), "12.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.number.Dotted())
	}
}

func TestCueNumber_Increment(t *testing.T) {
	t.Run("unset becomes one", func(t *testing.T) {
		assert.Equal(t, PrimaryNumber(1), CueNumber{}.Increment())
	})

	t.Run("set adds one", func(t *testing.T) {
		assert.Equal(t, PrimaryNumber(8), PrimaryNumber(7).Increment())
	})

	t.Run("secondary untouched", func(t *testing.T) {
		assert.Equal(t, NewCueNumber(6, 3), NewCueNumber(5, 3).Increment())
		assert.Equal(t, CueNumber{Primary: Num(1), Secondary: Num(4)}, CueNumber{Secondary: Num(4)}.Increment())
	})

	t.Run("saturates at ceiling", func(t *testing.T) {
		assert.Equal(t, PrimaryNumber(MaxPart), PrimaryNumber(MaxPart).Increment())
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		n := PrimaryNumber(2)
		_ = n.Increment()
		assert.Equal(t, PrimaryNumber(2), n)
	})
}

func TestCueNumber_Decrement(t *testing.T) {
	assert.Equal(t, CueNumber{}, CueNumber{}.Decrement(), "unset stays unset")
	assert.Equal(t, CueNumber{}, PrimaryNumber(1).Decrement(), "one clears")
	assert.Equal(t, PrimaryNumber(4), PrimaryNumber(5).Decrement())
	assert.Equal(t, CueNumber{Secondary: Num(2)}, NewCueNumber(1, 2).Decrement(), "secondary untouched")
}

func TestCueNumber_IncrementDecrementRoundTrip(t *testing.T) {
	for _, n := range []CueNumber{{}, PrimaryNumber(1), PrimaryNumber(9), NewCueNumber(3, 1)} {
		assert.Equal(t, n, n.Increment().Decrement(), "round trip from %s", n.Dotted())
	}
}

func TestCueNumber_SecondaryMutation(t *testing.T) {
	n := PrimaryNumber(5).IncrementSecondary()
	assert.Equal(t, "5.1", n.Dotted())

	n = n.IncrementSecondary().IncrementSecondary()
	assert.Equal(t, "5.3", n.Dotted())

	n = n.DecrementSecondary().DecrementSecondary().DecrementSecondary()
	assert.Equal(t, "5", n.Dotted())
	assert.Equal(t, PrimaryNumber(5), n)
}

func TestParseCueNumber(t *testing.T) {
	valid := map[string]CueNumber{
		"":           {},
		"_":          {},
		" 7 ":        PrimaryNumber(7),
		"5.3":        NewCueNumber(5, 3),
		"_.3":        {Secondary: Num(3)},
		"5._":        PrimaryNumber(5),
		"12.0":       NewCueNumber(12, 0),
		"4294967295": PrimaryNumber(MaxPart),
	}
	for in, want := range valid {
		got, err := ParseCueNumber(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"abc", "5.", ".3", "-1", "5.3.1", "4294967296"} {
		_, err := ParseCueNumber(in)
		assert.ErrorIs(t, err, ErrInvalidCueNumber, "input %q", in)
	}
}

func TestParseCueNumber_DottedRoundTrip(t *testing.T) {
	for _, n := range createTestNumbers() {
		parsed, err := ParseCueNumber(n.Dotted())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
}
