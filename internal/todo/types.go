package todo

type AddInput struct {
	Text string
}
