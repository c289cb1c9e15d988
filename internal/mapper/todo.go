package mapper

import (
	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

// TodoMapper renames completed to isDone and parses due_date.
type TodoMapper struct{}

var _ Mapper[domain.Todo, viewmodel.TodoView] = TodoMapper{}

func (TodoMapper) ToViewModel(d domain.Todo) (viewmodel.TodoView, error) {
	due, err := format.ParseTimestamp("due_date", d.DueDate)
	if err != nil {
		return viewmodel.TodoView{}, err
	}
	return viewmodel.TodoView{
		ID:      d.ID,
		Text:    d.Text,
		IsDone:  d.Completed,
		DueDate: due,
	}, nil
}

func (TodoMapper) ToDomainModel(v viewmodel.TodoView) (domain.Todo, error) {
	return domain.Todo{
		ID:        v.ID,
		Text:      v.Text,
		Completed: v.IsDone,
		DueDate:   format.FormatTimestamp(v.DueDate),
	}, nil
}
