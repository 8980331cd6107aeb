package models

// Participant is one checked-in attendee. The id is generated on the device
// at first check-in and stays stable for the whole workshop.
type Participant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckInImage string `json:"check_in_image,omitempty"`
	Introduction string `json:"introduction,omitempty"`
}

// Introduction is an AI-polished self introduction, at most one per
// participant. A resubmission replaces the previous entry in place.
type Introduction struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Style         string `json:"style"`
	Text          string `json:"text"`
}

const (
	IntroStyleExpert   = "expert"
	IntroStyleFriendly = "friendly"
	IntroStyleHumorous = "humorous"
)
