package viewmodel

import "time"

type TodoView struct {
	ID      string    `json:"id" yaml:"id"`
	Text    string    `json:"text" yaml:"text"`
	IsDone  bool      `json:"isDone" yaml:"isDone"`
	DueDate time.Time `json:"dueDate" yaml:"dueDate"`
}
