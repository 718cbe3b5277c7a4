package model

// TodoItem is an entry in the sidebar to-do list.
type TodoItem struct {
	ID        string
	Text      string
	Completed bool
}
