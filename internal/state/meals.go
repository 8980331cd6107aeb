package state

import (
	"context"
	"log"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// FetchMenu asks the menu collaborator for a fresh menu and atomically
// replaces the whole meal set and restaurant metadata. All meal selections
// are cleared: a stale selection pointing at a meal id from the old menu is
// a correctness hazard this operation avoids by clearing rather than leaving
// dangling references.
func (s *Session) FetchMenu(ctx context.Context, query string) {
	if s.menus == nil {
		return
	}
	info, meals, err := s.menus.Menu(ctx, query)
	if err != nil {
		log.Printf("state: menu fetch failed: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RestaurantInfo = info
	s.snap.Meals = meals
	s.snap.Selections = nil
	s.changed()
}

// AddMeal upserts one meal by id.
func (s *Session) AddMeal(meal models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Meals {
		if s.snap.Meals[i].ID == meal.ID {
			s.snap.Meals[i] = meal
			s.changed()
			return
		}
	}
	s.snap.Meals = append(s.snap.Meals, meal)
	s.changed()
}

// UpdateMeal replaces a meal by id; missing id is a no-op.
func (s *Session) UpdateMeal(meal models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Meals {
		if s.snap.Meals[i].ID == meal.ID {
			s.snap.Meals[i] = meal
			s.changed()
			return
		}
	}
}

// DeleteMeal drops one meal by id. Existing selections referencing it are
// deliberately kept: readers treat a dangling meal id as "meal no longer
// offered".
func (s *Session) DeleteMeal(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Meals {
		if s.snap.Meals[i].ID == id {
			s.snap.Meals = append(s.snap.Meals[:i], s.snap.Meals[i+1:]...)
			s.changed()
			return
		}
	}
}

// AddSelection upserts the participant's meal pick; a new pick replaces the
// old one.
func (s *Session) AddSelection(sel models.MealSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Selections {
		if s.snap.Selections[i].ParticipantID == sel.ParticipantID {
			s.snap.Selections[i] = sel
			s.changed()
			return
		}
	}
	s.snap.Selections = append(s.snap.Selections, sel)
	s.changed()
}
