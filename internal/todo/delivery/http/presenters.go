package http

import (
	"personal-dashboard/internal/model"
	"personal-dashboard/internal/todo"
)

type addReq struct {
	Text string `json:"text"`
}

func (r addReq) toInput() todo.AddInput {
	return todo.AddInput{Text: r.Text}
}

type todoResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func newTodoResp(item model.TodoItem) todoResp {
	return todoResp{ID: item.ID, Text: item.Text, Completed: item.Completed}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
}

func (h *handler) newListResp(items []model.TodoItem) listResp {
	out := make([]todoResp, len(items))
	for i, item := range items {
		out[i] = newTodoResp(item)
	}
	return listResp{Todos: out}
}
