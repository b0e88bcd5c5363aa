package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	storedomain "taskflows/internal/modules/store/domain"
	storedto "taskflows/internal/modules/store/dto"
	storein "taskflows/internal/modules/store/port/in"
	taskdto "taskflows/internal/modules/tasks/dto"
	taskin "taskflows/internal/modules/tasks/port/in"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
)

const (
	FilterAll       = "all"
	FilterCompleted = "completed"
	FilterPending   = "pending"

	defaultCategory = "Work"
)

type Interactor struct {
	store storein.Usecase
	clock clock.Clock
	idGen id.Generator
}

func NewInteractor(store storein.Usecase, clock clock.Clock, idGen id.Generator) taskin.Usecase {
	return &Interactor{store: store, clock: clock, idGen: idGen}
}

func (i *Interactor) Add(ctx context.Context, input taskdto.AddInput) (taskdto.TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return taskdto.TaskOutput{}, fmt.Errorf("%w: task title is required", apperrors.ErrInvalidInput)
	}
	priority := storedomain.Priority(strings.ToLower(strings.TrimSpace(input.Priority)))
	if priority == "" {
		priority = storedomain.PriorityMedium
	}
	if err := priority.Validate(); err != nil {
		return taskdto.TaskOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultCategory
	}
	dueDate := strings.TrimSpace(input.DueDate)
	if dueDate != "" {
		if _, err := time.Parse(storedomain.DateLayout, dueDate); err != nil {
			return taskdto.TaskOutput{}, fmt.Errorf("%w: due date must be YYYY-MM-DD", apperrors.ErrInvalidInput)
		}
	}

	task := storedomain.Task{
		ID:        i.idGen.New(),
		Title:     title,
		Priority:  priority,
		Category:  category,
		DueDate:   dueDate,
		CreatedAt: i.clock.Now(),
	}
	doc := i.store.Read(ctx)
	doc.Tasks = append([]storedomain.Task{task}, doc.Tasks...)
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityCreated, task.Title)
	return toOutput(task), nil
}

func (i *Interactor) Toggle(ctx context.Context, id string) (taskdto.TaskOutput, error) {
	doc := i.store.Read(ctx)
	idx := indexOf(doc.Tasks, id)
	if idx < 0 {
		return taskdto.TaskOutput{}, fmt.Errorf("task %q: %w", id, apperrors.ErrNotFound)
	}
	doc.Tasks[idx].Completed = !doc.Tasks[idx].Completed
	task := doc.Tasks[idx]
	i.store.Write(ctx, doc)
	if task.Completed {
		i.log(ctx, storedomain.ActivityCompleted, task.Title)
	} else {
		i.log(ctx, storedomain.ActivityUncompleted, task.Title)
	}
	return toOutput(task), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	idx := indexOf(doc.Tasks, id)
	if idx < 0 {
		return fmt.Errorf("task %q: %w", id, apperrors.ErrNotFound)
	}
	title := doc.Tasks[idx].Title
	doc.Tasks = append(doc.Tasks[:idx:idx], doc.Tasks[idx+1:]...)
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityDeleted, title)
	return nil
}

func (i *Interactor) List(ctx context.Context, input taskdto.ListInput) ([]taskdto.TaskOutput, error) {
	filter := strings.ToLower(strings.TrimSpace(input.Filter))
	if filter == "" {
		filter = FilterAll
	}
	match, err := matcher(filter)
	if err != nil {
		return nil, err
	}
	tasks := i.store.Read(ctx).Tasks
	out := make([]taskdto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		if match(task) {
			out = append(out, toOutput(task))
		}
	}
	return out, nil
}

func (i *Interactor) Breakdown(ctx context.Context) (taskdto.BreakdownOutput, error) {
	tasks := i.store.Read(ctx).Tasks
	out := taskdto.BreakdownOutput{
		Total:      len(tasks),
		ByPriority: map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, task := range tasks {
		if task.Completed {
			out.Completed++
		} else {
			out.Pending++
		}
		out.ByPriority[string(task.Priority)]++
		out.ByCategory[task.Category]++
	}
	return out, nil
}

func (i *Interactor) log(ctx context.Context, kind storedomain.ActivityType, title string) {
	i.store.AppendActivity(ctx, storedto.ActivityInput{Type: string(kind), Title: title, Timestamp: i.clock.Now()})
}

func matcher(filter string) (func(storedomain.Task) bool, error) {
	switch filter {
	case FilterAll:
		return func(storedomain.Task) bool { return true }, nil
	case FilterCompleted:
		return func(t storedomain.Task) bool { return t.Completed }, nil
	case FilterPending:
		return func(t storedomain.Task) bool { return !t.Completed }, nil
	}
	priority := storedomain.Priority(filter)
	if err := priority.Validate(); err != nil {
		return nil, fmt.Errorf("%w: unknown filter %q", apperrors.ErrInvalidInput, filter)
	}
	return func(t storedomain.Task) bool { return t.Priority == priority }, nil
}

func indexOf(tasks []storedomain.Task, id string) int {
	for idx, task := range tasks {
		if task.ID == id {
			return idx
		}
	}
	return -1
}

func toOutput(task storedomain.Task) taskdto.TaskOutput {
	return taskdto.TaskOutput{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		Category:  task.Category,
		DueDate:   task.DueDate,
		CreatedAt: task.CreatedAt,
	}
}
