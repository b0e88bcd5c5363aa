package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	caldto "taskflows/internal/modules/calendar/dto"
	calin "taskflows/internal/modules/calendar/port/in"
	storedomain "taskflows/internal/modules/store/domain"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
)

const (
	defaultColor         = "blue"
	defaultUpcomingLimit = 5
)

type Interactor struct {
	store storein.Usecase
	clock clock.Clock
	idGen id.Generator
}

func NewInteractor(store storein.Usecase, clock clock.Clock, idGen id.Generator) calin.Usecase {
	return &Interactor{store: store, clock: clock, idGen: idGen}
}

func (i *Interactor) Add(ctx context.Context, input caldto.AddInput) (caldto.EventOutput, error) {
	title := strings.TrimSpace(input.Title)
	date := strings.TrimSpace(input.Date)
	at := strings.TrimSpace(input.Time)
	if title == "" || date == "" || at == "" {
		return caldto.EventOutput{}, fmt.Errorf("%w: event title, date and time are required", apperrors.ErrInvalidInput)
	}
	if _, err := parseDate(date); err != nil {
		return caldto.EventOutput{}, err
	}
	var attendees []string
	for _, a := range input.Attendees {
		if a = strings.TrimSpace(a); a != "" {
			attendees = append(attendees, a)
		}
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = defaultColor
	}
	event := storedomain.Event{
		ID:        i.idGen.New(),
		Title:     title,
		Date:      date,
		Time:      at,
		Location:  strings.TrimSpace(input.Location),
		Attendees: attendees,
		Color:     color,
	}
	doc := i.store.Read(ctx)
	doc.Events = append(doc.Events, event)
	i.store.Write(ctx, doc)
	return toOutput(event), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	kept := make([]storedomain.Event, 0, len(doc.Events))
	for _, event := range doc.Events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}
	if len(kept) == len(doc.Events) {
		return fmt.Errorf("event %q: %w", id, apperrors.ErrNotFound)
	}
	doc.Events = kept
	i.store.Write(ctx, doc)
	return nil
}

func (i *Interactor) List(ctx context.Context) ([]caldto.EventOutput, error) {
	events := i.store.Read(ctx).Events
	out := make([]caldto.EventOutput, 0, len(events))
	for _, event := range events {
		out = append(out, toOutput(event))
	}
	return out, nil
}

func (i *Interactor) Day(ctx context.Context, date string) ([]caldto.EventOutput, error) {
	day, err := parseDate(strings.TrimSpace(date))
	if err != nil {
		return nil, err
	}
	key := day.Format(storedomain.DateLayout)
	out := []caldto.EventOutput{}
	for _, event := range i.store.Read(ctx).Events {
		if event.Date == key {
			out = append(out, toOutput(event))
		}
	}
	return out, nil
}

func (i *Interactor) Month(ctx context.Context, input caldto.MonthInput) (caldto.MonthOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year < 1 {
		return caldto.MonthOutput{}, fmt.Errorf("%w: month must be 1-12 and year positive", apperrors.ErrInvalidInput)
	}
	first := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	out := caldto.MonthOutput{
		Year:   input.Year,
		Month:  input.Month,
		Offset: int(first.Weekday()),
		Days:   make([]caldto.DayCell, daysIn),
	}
	for d := 0; d < daysIn; d++ {
		out.Days[d] = caldto.DayCell{Day: d + 1, Date: first.AddDate(0, 0, d).Format(storedomain.DateLayout)}
	}
	for _, event := range i.store.Read(ctx).Events {
		day, err := time.Parse(storedomain.DateLayout, event.Date)
		if err != nil || day.Year() != input.Year || int(day.Month()) != input.Month {
			continue
		}
		cell := &out.Days[day.Day()-1]
		cell.Events = append(cell.Events, toOutput(event))
	}
	return out, nil
}

// Upcoming returns events dated today or later, soonest first.
func (i *Interactor) Upcoming(ctx context.Context, limit int) ([]caldto.EventOutput, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	today := i.clock.Now().Format(storedomain.DateLayout)
	var upcoming []storedomain.Event
	for _, event := range i.store.Read(ctx).Events {
		if _, err := time.Parse(storedomain.DateLayout, event.Date); err != nil {
			continue
		}
		if event.Date >= today {
			upcoming = append(upcoming, event)
		}
	}
	sort.SliceStable(upcoming, func(a, b int) bool { return upcoming[a].Date < upcoming[b].Date })
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	out := make([]caldto.EventOutput, 0, len(upcoming))
	for _, event := range upcoming {
		out = append(out, toOutput(event))
	}
	return out, nil
}

func parseDate(value string) (time.Time, error) {
	day, err := time.Parse(storedomain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidInput)
	}
	return day, nil
}

func toOutput(event storedomain.Event) caldto.EventOutput {
	return caldto.EventOutput{
		ID:        event.ID,
		Title:     event.Title,
		Date:      event.Date,
		Time:      event.Time,
		Location:  event.Location,
		Attendees: append([]string(nil), event.Attendees...),
		Type:      event.Type,
		Color:     event.Color,
	}
}
