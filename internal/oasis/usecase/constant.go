package usecase

// Plant status lines, most specific first.
const (
	StatusBloomed  = "Thank you for helping me bloom!"
	StatusLoved    = "Feeling loved and cared for!"
	StatusWatered  = "Thanks for the water! Say something nice?"
	StatusNurtured = "Your words are so kind! I'm a little thirsty."
	StatusIdle     = "A little care goes a long way."
)

var affirmations = []string{
	"You are capable of amazing things.",
	"Today is a new day, full of opportunities.",
	"Your potential is limitless.",
	"You radiate positivity and attract success.",
	"Believe in yourself and all that you are.",
	"Every challenge is a chance to grow.",
	"You are worthy of all the good things that come your way.",
}
