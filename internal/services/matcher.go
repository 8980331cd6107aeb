package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// MatchService computes networking matches from the interest set. It asks
// the generation collaborator first and falls back to a deterministic
// common-token heuristic, so match computation always succeeds.
type MatchService struct {
	gen *GenerateService
}

func NewMatchService(gen *GenerateService) *MatchService {
	return &MatchService{gen: gen}
}

const matchSystemPrompt = `You match workshop attendees for networking based on their interests. The user sends a JSON array of {"participant_id", "name", "interests"}. For every participant pick up to 3 good conversation partners. Respond with ONLY valid JSON:

{"<participant_id>": [{"matched_participant_id": "...", "matched_participant_name": "...", "common_interests": "...", "conversation_starter": "..."}]}

Rules:
- Never match a participant with themselves
- "common_interests" names what they share, "conversation_starter" is one concrete opening question
- Write in the language of the interests`

// Matches implements state.Matcher.
func (s *MatchService) Matches(ctx context.Context, interests []models.NetworkingInterest) (map[string][]models.NetworkingMatch, error) {
	if len(interests) < 2 {
		return map[string][]models.NetworkingMatch{}, nil
	}

	if s.gen != nil && s.gen.IsAvailable() {
		if matches, err := s.aiMatches(ctx, interests); err == nil {
			return matches, nil
		} else {
			log.Printf("matcher: falling back to heuristic: %v", err)
		}
	}
	return heuristicMatches(interests), nil
}

func (s *MatchService) aiMatches(ctx context.Context, interests []models.NetworkingInterest) (map[string][]models.NetworkingMatch, error) {
	input, err := json.Marshal(interests)
	if err != nil {
		return nil, err
	}
	content, err := s.gen.chat(ctx, matchSystemPrompt, string(input))
	if err != nil {
		return nil, err
	}
	var out map[string][]models.NetworkingMatch
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("invalid match JSON: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty match map")
	}
	return out, nil
}

// heuristicMatches pairs everyone by interest-token overlap: clearly worse
// than the collaborator's output but always available.
func heuristicMatches(interests []models.NetworkingInterest) map[string][]models.NetworkingMatch {
	tokens := make(map[string]map[string]bool, len(interests))
	for _, ni := range interests {
		tokens[ni.ParticipantID] = tokenize(ni.Interests)
	}

	out := make(map[string][]models.NetworkingMatch, len(interests))
	for _, me := range interests {
		type scored struct {
			match models.NetworkingMatch
			score int
		}
		var candidates []scored
		for _, other := range interests {
			if other.ParticipantID == me.ParticipantID {
				continue
			}
			common := intersect(tokens[me.ParticipantID], tokens[other.ParticipantID])
			shared := strings.Join(common, ", ")
			if shared == "" {
				shared = "new perspectives"
			}
			candidates = append(candidates, scored{
				match: models.NetworkingMatch{
					MatchedParticipantID:   other.ParticipantID,
					MatchedParticipantName: other.Name,
					CommonInterests:        shared,
					ConversationStarter:    fmt.Sprintf("Ask %s what got them into %s.", other.Name, firstOr(common, other.Interests)),
				},
				score: len(common),
			})
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].score != candidates[b].score {
				return candidates[a].score > candidates[b].score
			}
			return candidates[a].match.MatchedParticipantID < candidates[b].match.MatchedParticipantID
		})
		if len(candidates) > 3 {
			candidates = candidates[:3]
		}
		matches := make([]models.NetworkingMatch, 0, len(candidates))
		for _, c := range candidates {
			matches = append(matches, c.match)
		}
		out[me.ParticipantID] = matches
	}
	return out
}

func tokenize(s string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\n' || r == '\t'
	}) {
		if len(tok) > 1 {
			out[tok] = true
		}
	}
	return out
}

func intersect(a, b map[string]bool) []string {
	var out []string
	for tok := range a {
		if b[tok] {
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
