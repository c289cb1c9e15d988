package domain

// Todo is a task as returned by the todos API.
type Todo struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	DueDate   string `json:"due_date" yaml:"due_date"`
}

func (Todo) Shape() Shape {
	return Shape{Required: []string{"id", "text", "completed", "due_date"}}
}

func (t Todo) Validate() error {
	return firstError(
		requireString("id", t.ID),
		requireString("due_date", t.DueDate),
	)
}
