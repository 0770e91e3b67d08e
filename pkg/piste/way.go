package piste

import (
	"fmt"
	"strings"

	"github.com/natevvv/ski-routing/pkg/trail"
)

type Kind int

const (
	Unknown Kind = iota
	Downhill
	Lift
)

func (k Kind) String() string {
	return []string{"Unknown", "Downhill", "Lift"}[k]
}

// Way is an OSM way which is usable for skiing, either a downhill piste or a lift
type Way struct {
	ID      int64
	Kind    Kind
	Rating  trail.Rating
	Name    string
	NodeIDs []int64
}

// aerialway values which do not transport skiers
var ignoredAerialways = map[string]struct{}{
	"pylon":   {},
	"station": {},
	"goods":   {},
}

// Classify decides from the OSM tags if a way is a piste or a lift.
// Pistes without difficulty are rated intermediate.
func Classify(tags map[string]string) (Kind, trail.Rating, bool) {
	if aerialway, ok := tags["aerialway"]; ok {
		if _, ignored := ignoredAerialways[aerialway]; ignored {
			return Unknown, trail.Lift, false
		}
		return Lift, trail.Lift, true
	}
	if tags["piste:type"] != "downhill" {
		return Unknown, trail.Lift, false
	}
	return Downhill, difficultyRating(tags["piste:difficulty"]), true
}

func difficultyRating(difficulty string) trail.Rating {
	switch strings.ToLower(difficulty) {
	case "novice", "easy":
		return trail.Easy
	case "advanced":
		return trail.Advanced
	case "expert", "freeride", "extreme":
		return trail.Expert
	default:
		return trail.Intermediate
	}
}

// Name of the way: the piste name, the name, or a generated one
func Name(id int64, kind Kind, tags map[string]string) string {
	for _, key := range []string{"piste:name", "name", "ref"} {
		if name := strings.TrimSpace(tags[key]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%s %d", strings.ToLower(kind.String()), id)
}

// NewWay creates the way if the tags describe a piste or a lift
func NewWay(id int64, tags map[string]string, nodeIDs []int64) (*Way, bool) {
	kind, rating, ok := Classify(tags)
	if !ok {
		return nil, false
	}
	return &Way{ID: id, Kind: kind, Rating: rating, Name: Name(id, kind, tags), NodeIDs: nodeIDs}, true
}
