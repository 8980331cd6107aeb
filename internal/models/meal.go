package models

// Meal is one menu entry. Price is in minor currency units.
type Meal struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	Image         string `json:"image,omitempty"`
	Stock         int    `json:"stock"`
	IsRecommended bool   `json:"is_recommended,omitempty"`
}

// RestaurantInfo describes where the current menu came from.
type RestaurantInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MealSelection is at most one per participant; a new pick replaces the old
// one. A MealID that no longer resolves means "meal no longer offered" and is
// tolerated by readers.
type MealSelection struct {
	ParticipantID string `json:"participant_id"`
	MealID        int    `json:"meal_id"`
}
