package oasis

import "personal-dashboard/internal/model"

type NurtureInput struct {
	Message string
}

// StateOutput is the plant as seen at the time of the call.
type StateOutput struct {
	Plant         model.Plant
	WateredToday  bool
	NurturedToday bool
	Bloomed       bool
	Status        string
	Affirmation   string
}
