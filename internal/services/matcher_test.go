package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

func interests() []models.NetworkingInterest {
	return []models.NetworkingInterest{
		{ParticipantID: "a", Name: "Ana", Interests: "go, hiking, coffee"},
		{ParticipantID: "b", Name: "Ben", Interests: "go, music"},
		{ParticipantID: "c", Name: "Cid", Interests: "hiking, coffee, music"},
		{ParticipantID: "d", Name: "Dee", Interests: "pottery"},
	}
}

func TestMatcherBelowThreshold(t *testing.T) {
	m := NewMatchService(NewGenerateService("", "", ""))

	out, err := m.Matches(context.Background(), []models.NetworkingInterest{
		{ParticipantID: "a", Name: "Ana", Interests: "go"},
	})
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("below threshold must yield an empty map, got %+v", out)
	}
}

func TestHeuristicMatchesEveryParticipant(t *testing.T) {
	// no API key configured, so the heuristic path runs
	m := NewMatchService(NewGenerateService("", "", ""))

	out, err := m.Matches(context.Background(), interests())
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("every participant must get matches, got %d entries", len(out))
	}
	for id, matches := range out {
		if len(matches) == 0 || len(matches) > 3 {
			t.Fatalf("participant %s: want 1..3 matches, got %d", id, len(matches))
		}
		for _, match := range matches {
			if match.MatchedParticipantID == id {
				t.Fatalf("participant %s matched with themselves", id)
			}
			if match.ConversationStarter == "" {
				t.Fatalf("participant %s: empty conversation starter", id)
			}
		}
	}
}

func TestHeuristicRanksByOverlap(t *testing.T) {
	out := heuristicMatches(interests())

	// Ana shares 2 tokens with Cid (hiking, coffee) and 1 with Ben (go)
	anas := out["a"]
	if anas[0].MatchedParticipantID != "c" {
		t.Fatalf("best overlap must rank first, got %+v", anas)
	}
	if anas[0].CommonInterests != "coffee, hiking" {
		t.Fatalf("common interests wrong: %q", anas[0].CommonInterests)
	}

	// Dee shares nothing; the placeholder keeps the card renderable
	dees := out["d"]
	if dees[0].CommonInterests != "new perspectives" {
		t.Fatalf("zero-overlap placeholder missing: %q", dees[0].CommonInterests)
	}
}

func TestHeuristicIsDeterministic(t *testing.T) {
	first := heuristicMatches(interests())
	for i := 0; i < 10; i++ {
		if got := heuristicMatches(interests()); !reflect.DeepEqual(first, got) {
			t.Fatalf("heuristic must be deterministic, run %d differed", i)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  []string
		count int
	}{
		{name: "comma separated", in: "go, hiking", want: []string{"go", "hiking"}, count: 2},
		{name: "case folded", in: "Go GO go", want: []string{"go"}, count: 1},
		{name: "single letters dropped", in: "a b cd", want: []string{"cd"}, count: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(tc.in)
			if len(got) != tc.count {
				t.Fatalf("want %d tokens, got %v", tc.count, got)
			}
			for _, w := range tc.want {
				if !got[w] {
					t.Fatalf("missing token %q in %v", w, got)
				}
			}
		})
	}
}
