package http

import (
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/oasis"
)

type nurtureReq struct {
	Message string `json:"message"`
}

func (r nurtureReq) toInput() oasis.NurtureInput {
	return oasis.NurtureInput{Message: r.Message}
}

type stateResp struct {
	Growth        int        `json:"growth"`
	MaxGrowth     int        `json:"max_growth"`
	LastWatered   *time.Time `json:"last_watered"`
	LastNurtured  *time.Time `json:"last_nurtured"`
	WateredToday  bool       `json:"watered_today"`
	NurturedToday bool       `json:"nurtured_today"`
	Bloomed       bool       `json:"bloomed"`
	Status        string     `json:"status"`
	Affirmation   string     `json:"affirmation"`
}

func (h *handler) newStateResp(out oasis.StateOutput) stateResp {
	return stateResp{
		Growth:        out.Plant.Growth,
		MaxGrowth:     model.MaxPlantGrowth,
		LastWatered:   out.Plant.LastWatered,
		LastNurtured:  out.Plant.LastNurtured,
		WateredToday:  out.WateredToday,
		NurturedToday: out.NurturedToday,
		Bloomed:       out.Bloomed,
		Status:        out.Status,
		Affirmation:   out.Affirmation,
	}
}
