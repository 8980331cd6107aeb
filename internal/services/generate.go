package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// GenerateService talks to the chat-completions collaborator. Every
// operation degrades to canned content when the collaborator is unreachable
// or unconfigured; callers never see an error or a blocked UI because of it.
type GenerateService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewGenerateService(apiKey, apiURL, model string) *GenerateService {
	return &GenerateService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *GenerateService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *GenerateService) chat(ctx context.Context, system, user string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("generation is not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}
	return cleanJSONContent(chatResp.Choices[0].Message.Content), nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

const introSystemPrompt = `You write short self introductions for workshop attendees. Respond with ONLY valid JSON (no markdown, no code fences) in this format:

{"expert": "...", "friendly": "...", "humorous": "..."}

Rules:
- Each introduction is under 150 characters
- "expert" is professional, "friendly" is warm, "humorous" is playful
- Write in the same language as the user's input`

// Introductions generates three styled self introductions.
func (s *GenerateService) Introductions(ctx context.Context, name, job, interests string) map[string]string {
	fallback := map[string]string{
		models.IntroStyleExpert:   fmt.Sprintf("Hello, I'm %s, working as %s. I care deeply about %s and hope to pick up new insights today.", name, job, interests),
		models.IntroStyleFriendly: fmt.Sprintf("Hi! I'm %s. I work as %s and lately I'm really into %s. Looking forward to meeting you all!", name, job, interests),
		models.IntroStyleHumorous: fmt.Sprintf("I'm %s. Officially %s, unofficially a full-time %s enthusiast. Nice to meet you!", name, job, interests),
	}

	prompt := fmt.Sprintf("Name: %s\nJob: %s\nInterests: %s", name, job, interests)
	content, err := s.chat(ctx, introSystemPrompt, prompt)
	if err != nil {
		log.Printf("generate: introductions: %v", err)
		return fallback
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		log.Printf("generate: introductions: invalid JSON: %v", err)
		return fallback
	}
	for _, style := range []string{models.IntroStyleExpert, models.IntroStyleFriendly, models.IntroStyleHumorous} {
		if out[style] == "" {
			return fallback
		}
	}
	return out
}

const teamNamesSystemPrompt = `You suggest team names. Respond with ONLY valid JSON: {"team_names": ["...", "..."]}. Suggest 5 short, positive, easy to pronounce names based on the user's keywords, in the user's language.`

// TeamNames suggests five team names from free-text keywords.
func (s *GenerateService) TeamNames(ctx context.Context, keywords string) []string {
	fallback := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}

	content, err := s.chat(ctx, teamNamesSystemPrompt, "Keywords: "+keywords)
	if err != nil {
		log.Printf("generate: team names: %v", err)
		return fallback
	}
	var out struct {
		TeamNames []string `json:"team_names"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil || len(out.TeamNames) == 0 {
		log.Printf("generate: team names: invalid JSON: %v", err)
		return fallback
	}
	return out.TeamNames
}

// Motivation generates one short motivational quote for the given topic.
func (s *GenerateService) Motivation(ctx context.Context, topic string) string {
	const fallback = "The biggest risk is not taking any risk at all."

	content, err := s.chat(ctx,
		"You write one short, punchy motivational quote for workshop attendees, in the user's language. Respond with the quote only, no JSON.",
		"Topic: "+topic)
	if err != nil {
		log.Printf("generate: motivation: %v", err)
		return fallback
	}
	return content
}

const menuSystemPrompt = `You compose a lunch menu for a workshop group. Respond with ONLY valid JSON:

{"restaurant": {"name": "...", "description": "..."}, "meals": [{"id": 1, "name": "...", "description": "...", "price": 12000, "stock": 20, "is_recommended": false}]}

Rules:
- 4-6 meals, exactly one with "is_recommended": true
- price is in minor currency units, stock between 10 and 30
- ids are sequential starting at 1
- write names and descriptions in the user's language`

// Menu produces a fresh restaurant menu for the query. It implements
// state.MenuProvider and never returns an error: collaborator failure falls
// back to the canned house menu.
func (s *GenerateService) Menu(ctx context.Context, query string) (*models.RestaurantInfo, []models.Meal, error) {
	content, err := s.chat(ctx, menuSystemPrompt, "Request: "+query)
	if err != nil {
		log.Printf("generate: menu: %v", err)
		return fallbackMenu()
	}
	var out struct {
		Restaurant models.RestaurantInfo `json:"restaurant"`
		Meals      []models.Meal         `json:"meals"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil || len(out.Meals) == 0 {
		log.Printf("generate: menu: invalid JSON: %v", err)
		return fallbackMenu()
	}
	return &out.Restaurant, out.Meals, nil
}

func fallbackMenu() (*models.RestaurantInfo, []models.Meal, error) {
	info := &models.RestaurantInfo{
		Name:        "House Kitchen",
		Description: "Standard workshop catering menu",
	}
	meals := []models.Meal{
		{ID: 1, Name: "Premium lunch box", Description: "Rice, side dishes and a main course", Price: 15000, Stock: 20, IsRecommended: true},
		{ID: 2, Name: "Club sandwich", Description: "Ham, cheese and fresh vegetables", Price: 12000, Stock: 30},
		{ID: 3, Name: "Spicy octopus rice bowl", Description: "For those who need to blow off steam", Price: 13000, Stock: 15},
		{ID: 4, Name: "Beef burrito", Description: "Beef, rice, beans and vegetables", Price: 11000, Stock: 25},
		{ID: 5, Name: "Ricotta salad", Description: "Fresh greens with ricotta cheese", Price: 10000, Stock: 10},
	}
	return info, meals, nil
}

const playlistSystemPrompt = `You pick background music for a workshop. Respond with ONLY valid JSON: {"tracks": [{"title": "...", "artist": "..."}]}. Pick 5-8 well known tracks fitting the requested mood.`

// Playlist builds an ambiance playlist for the requested mood.
func (s *GenerateService) Playlist(ctx context.Context, mood string) models.AmbiancePlaylist {
	fallback := *models.DefaultPlaylist()
	fallback.Mood = mood

	content, err := s.chat(ctx, playlistSystemPrompt, "Mood: "+mood)
	if err != nil {
		log.Printf("generate: playlist: %v", err)
		return fallback
	}
	var out struct {
		Tracks []models.Track `json:"tracks"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil || len(out.Tracks) == 0 {
		log.Printf("generate: playlist: invalid JSON: %v", err)
		return fallback
	}
	return models.AmbiancePlaylist{Mood: mood, Tracks: out.Tracks}
}

const summarySystemPrompt = `You summarize a workshop day. The user sends feedback messages and networking interests. Respond with ONLY valid JSON: {"feedback_summary": "...", "networking_summary": "..."}. Each summary is 2-4 sentences in the language of the input.`

// Summary condenses the day's feedback and networking interests into the
// wrap-up report.
func (s *GenerateService) Summary(ctx context.Context, feedback []models.Feedback, interests []models.NetworkingInterest) models.WorkshopSummary {
	fallback := models.WorkshopSummary{
		FeedbackSummary:   fmt.Sprintf("%d feedback entries were submitted today. Thanks everyone for the lively discussion!", len(feedback)),
		NetworkingSummary: fmt.Sprintf("%d attendees shared their interests and found new people to talk to.", len(interests)),
		GeneratedAt:       time.Now(),
	}

	var b strings.Builder
	b.WriteString("Feedback:\n")
	for _, f := range feedback {
		fmt.Fprintf(&b, "- [%s] %s\n", f.Category, f.Message)
	}
	b.WriteString("Interests:\n")
	for _, ni := range interests {
		fmt.Fprintf(&b, "- %s: %s\n", ni.Name, ni.Interests)
	}

	content, err := s.chat(ctx, summarySystemPrompt, b.String())
	if err != nil {
		log.Printf("generate: summary: %v", err)
		return fallback
	}
	var out struct {
		FeedbackSummary   string `json:"feedback_summary"`
		NetworkingSummary string `json:"networking_summary"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil || out.FeedbackSummary == "" {
		log.Printf("generate: summary: invalid JSON: %v", err)
		return fallback
	}
	return models.WorkshopSummary{
		FeedbackSummary:   out.FeedbackSummary,
		NetworkingSummary: out.NetworkingSummary,
		GeneratedAt:       time.Now(),
	}
}
