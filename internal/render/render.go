// Package render prints computed ratings for people and for other programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goserg/batchrating/internal/domain"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var Formats = []Format{Text, JSON, YAML}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: must be one of %v", s, Formats)
}

type rating struct {
	Team   string  `json:"team" yaml:"team"`
	Rating float64 `json:"rating" yaml:"rating"`
}

type teamState struct {
	Team       string  `json:"team" yaml:"team"`
	Rating     float64 `json:"rating" yaml:"rating"`
	Adjustment float64 `json:"adjustment" yaml:"adjustment"`
}

type failure struct {
	Error  string      `json:"error" yaml:"error"`
	Rounds int         `json:"rounds" yaml:"rounds"`
	Teams  []teamState `json:"teams" yaml:"teams"`
}

// Ratings writes players in the given order. The text format truncates
// ratings to whole points.
func Ratings(w io.Writer, f Format, players []domain.Player) error {
	if f == Text {
		for _, p := range players {
			if _, err := fmt.Fprintf(w, "%s: %d\n", p.Name, int(p.EloRating)); err != nil {
				return err
			}
		}
		return nil
	}
	out := make([]rating, 0, len(players))
	for _, p := range players {
		out = append(out, rating{Team: p.Name, Rating: p.EloRating})
	}
	return encode(w, f, out)
}

// Failure writes the state of the last round of a computation that did not
// converge.
func Failure(w io.Writer, f Format, rounds int, players []domain.Player) error {
	if f == Text {
		if _, err := fmt.Fprintf(w, "No convergence after %d rounds.\n", rounds); err != nil {
			return err
		}
		for _, p := range players {
			if _, err := fmt.Fprintf(w, "%s: rating %.3f, adjustment %+.3f\n", p.Name, p.EloRating, p.RatingChange); err != nil {
				return err
			}
		}
		return nil
	}
	out := failure{
		Error:  fmt.Sprintf("no convergence after %d rounds", rounds),
		Rounds: rounds,
		Teams:  make([]teamState, 0, len(players)),
	}
	for _, p := range players {
		out.Teams = append(out.Teams, teamState{Team: p.Name, Rating: p.EloRating, Adjustment: p.RatingChange})
	}
	return encode(w, f, out)
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", f)
}
