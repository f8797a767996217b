package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goserg/batchrating/internal/domain"
)

var ranked = []domain.Player{
	{Name: "Ash", EloRating: 1612.7},
	{Name: "Misty", EloRating: 1387.3},
	{Name: "Brock", EloRating: -12.9},
}

var lastRound = []domain.Player{
	{Name: "a", EloRating: 1505, RatingChange: 5},
	{Name: "b", EloRating: 1495, RatingChange: -5},
}

func TestRatingsGolden(t *testing.T) {
	g := goldie.New(t)
	for _, f := range []Format{Text, JSON} {
		var buf bytes.Buffer
		require.NoError(t, Ratings(&buf, f, ranked))
		g.Assert(t, "ratings_"+string(f), buf.Bytes())
	}
}

func TestFailureGolden(t *testing.T) {
	g := goldie.New(t)
	for _, f := range []Format{Text, JSON} {
		var buf bytes.Buffer
		require.NoError(t, Failure(&buf, f, 10000, lastRound))
		g.Assert(t, "failure_"+string(f), buf.Bytes())
	}
}

func TestRatingsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Ratings(&buf, YAML, ranked))

	var got []rating
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []rating{
		{Team: "Ash", Rating: 1612.7},
		{Team: "Misty", Rating: 1387.3},
		{Team: "Brock", Rating: -12.9},
	}, got)
}

func TestFailureYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Failure(&buf, YAML, 3, lastRound))

	var got failure
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Rounds)
	require.Len(t, got.Teams, 2)
	assert.Equal(t, -5.0, got.Teams[1].Adjustment)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
