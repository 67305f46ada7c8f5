package usecase

import (
	"context"

	"travel-planner/internal/planner"
	"travel-planner/internal/planner/repository"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/openrouter"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock search client
type mockSearch struct {
	queries []string
	result  string
}

func (m *mockSearch) Search(ctx context.Context, query string) string {
	m.queries = append(m.queries, query)
	return m.result
}

// Mock streaming LLM client
type mockLLM struct {
	prompts    []string
	streamFunc func(call int, req *openrouter.Request, onFragment func(string) error) error
}

func (m *mockLLM) StreamGenerate(ctx context.Context, req *openrouter.Request, onFragment func(string) error) error {
	call := len(m.prompts)
	m.prompts = append(m.prompts, req.Prompt)
	return m.streamFunc(call, req, onFragment)
}

func (m *mockLLM) Model() string { return "mock-model" }

// Mock plan repository
type mockRepo struct {
	saved []planner.Plan
}

func (m *mockRepo) Save(ctx context.Context, plan planner.Plan) error {
	m.saved = append(m.saved, plan)
	return nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (planner.Plan, error) {
	for _, p := range m.saved {
		if p.ID == id {
			return p, nil
		}
	}
	return planner.Plan{}, repository.ErrNotFound
}

// Mock Google Calendar client
type mockCalendar struct {
	inserted []gcalendar.InsertAllDayEventRequest
	err      error
}

func (m *mockCalendar) InsertAllDayEvent(ctx context.Context, req gcalendar.InsertAllDayEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inserted = append(m.inserted, req)
	return &gcalendar.Event{
		ID:       "ev-1",
		Summary:  req.Summary,
		HtmlLink: "https://calendar.google.com/ev-1",
		Start:    req.Start,
		End:      req.End,
	}, nil
}
