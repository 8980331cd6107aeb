package models

// NetworkingInterest is at most one per participant; resubmission replaces
// the prior value.
type NetworkingInterest struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Interests     string `json:"interests"`
}

// NetworkingMatch is derived state, recomputed from the current interest set
// whenever it has at least two entries. It is never written to the store.
type NetworkingMatch struct {
	MatchedParticipantID   string `json:"matched_participant_id"`
	MatchedParticipantName string `json:"matched_participant_name"`
	CommonInterests        string `json:"common_interests"`
	ConversationStarter    string `json:"conversation_starter"`
}
