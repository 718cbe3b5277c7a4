package model

import "time"

const MaxPlantGrowth = 4

// Plant is the oasis plant. Growth goes from 0 (seed) to MaxPlantGrowth.
type Plant struct {
	Growth       int
	LastWatered  *time.Time
	LastNurtured *time.Time
}
