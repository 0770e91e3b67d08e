package trail

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRating = errors.New("unknown trail rating")

// Rating is the difficulty of a trail. The values are ordered from easiest to hardest.
type Rating int

const (
	Lift Rating = iota
	Easy
	Intermediate
	Advanced
	Expert
)

var ratingNames = []string{"lift", "easy", "intermediate", "advanced", "expert"}

// Ratings returns all ratings in ascending order
func Ratings() []Rating {
	return []Rating{Lift, Easy, Intermediate, Advanced, Expert}
}

func (r Rating) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rating(%d)", int(r))
	}
	return ratingNames[r]
}

func (r Rating) Valid() bool { return r >= Lift && r <= Expert }

// Rank is the position of the rating in the fixed rating order
func (r Rating) Rank() int { return int(r) }

// AtMost reports whether r does not exceed the given ceiling
func (r Rating) AtMost(ceiling Rating) bool { return r.Rank() <= ceiling.Rank() }

func ParseRating(s string) (Rating, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range ratingNames {
		if n == name {
			return Rating(i), nil
		}
	}
	return Lift, fmt.Errorf("%w: %q", ErrUnknownRating, s)
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRating, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Record is one directed trail segment between two nodes
type Record struct {
	Start  string
	End    string
	Length float64 // meters
	Rating Rating
	Name   string // display name, shared by all segments of a trail
}

func (r Record) String() string {
	return fmt.Sprintf("%s -> %s (%v m, %v, %q)", r.Start, r.End, r.Length, r.Rating, r.Name)
}
