package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is a single statement rating. Numeric-scheme ratings are "1".."5";
// categorical ratings are one of the three named values. The string form is
// what gets persisted, so both schemes share one storage shape.
type Rating string

const (
	RatingYes      Rating = "yes"
	RatingNotYet   Rating = "not_yet"
	RatingDontKnow Rating = "unknown"
)

// NumericValue returns the integer value of a numeric-scheme rating.
func (r Rating) NumericValue() (int, bool) {
	n, err := strconv.Atoi(string(r))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// ValidateRating checks that value is in the domain of the given scheme.
func ValidateRating(scheme RatingScheme, value Rating) error {
	switch scheme {
	case SchemeNumeric:
		if _, ok := value.NumericValue(); !ok {
			return fmt.Errorf("numeric rating must be 1-5, got %q", value)
		}
	case SchemeCategorical:
		switch value {
		case RatingYes, RatingNotYet, RatingDontKnow:
		default:
			return fmt.Errorf("categorical rating must be yes, not_yet or unknown, got %q", value)
		}
	default:
		return fmt.Errorf("unknown rating scheme %q", scheme)
	}
	return nil
}

// Key identifies one statement within an assessment: the dimension it belongs
// to plus its index in that dimension's statement list. The persisted form is
// "{dimensionID}_{index}".
type Key struct {
	Dimension string
	Index     int
}

func (k Key) String() string {
	return fmt.Sprintf("%s_%d", k.Dimension, k.Index)
}

// ParseKey decomposes a persisted rating/comment key. Dimension ids may
// themselves contain underscores, so the index is the final segment.
func ParseKey(s string) (Key, error) {
	i := strings.LastIndexByte(s, '_')
	if i <= 0 || i == len(s)-1 {
		return Key{}, fmt.Errorf("malformed statement key %q", s)
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil || idx < 0 {
		return Key{}, fmt.Errorf("malformed statement key %q", s)
	}
	return Key{Dimension: s[:i], Index: idx}, nil
}
