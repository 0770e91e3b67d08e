package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingOrder(t *testing.T) {
	ratings := Ratings()
	require.Len(t, ratings, 5)
	for i := 1; i < len(ratings); i++ {
		assert.Less(t, ratings[i-1].Rank(), ratings[i].Rank())
	}
	assert.True(t, Easy.AtMost(Intermediate))
	assert.True(t, Intermediate.AtMost(Intermediate))
	assert.False(t, Expert.AtMost(Intermediate))
	assert.True(t, Lift.AtMost(Easy))
}

func TestParseRating(t *testing.T) {
	for _, r := range Ratings() {
		parsed, err := ParseRating(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	parsed, err := ParseRating(" Advanced ")
	require.NoError(t, err)
	assert.Equal(t, Advanced, parsed)

	_, err = ParseRating("double black")
	assert.ErrorIs(t, err, ErrUnknownRating)
}

func TestRatingText(t *testing.T) {
	text, err := Expert.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "expert", string(text))

	var r Rating
	require.NoError(t, r.UnmarshalText([]byte("lift")))
	assert.Equal(t, Lift, r)
	assert.Error(t, r.UnmarshalText([]byte("bunny")))

	_, err = Rating(17).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRating)
	assert.Equal(t, "Rating(17)", Rating(17).String())
}
