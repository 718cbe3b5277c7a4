package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/calendar/repository/memory"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockInterpreter returns a fixed command or error. When block is set it waits
// for release before answering.
type mockInterpreter struct {
	cmd     calendar.Command
	err     error
	block   chan struct{}
	release chan struct{}

	mu      sync.Mutex
	calls   int
	lastNow time.Time
}

func (m *mockInterpreter) Interpret(ctx context.Context, text string, now time.Time) (calendar.Command, error) {
	m.mu.Lock()
	m.calls++
	m.lastNow = now
	m.mu.Unlock()

	if m.block != nil {
		close(m.block)
		<-m.release
	}
	return m.cmd, m.err
}

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, interp calendar.Interpreter, seed ...model.CalendarEvent) (*implUseCase, *mockLogger) {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := &mockLogger{}
	repo := memory.New(l)
	if len(seed) > 0 {
		if err := repo.ReplaceEvents(context.Background(), seed); err != nil {
			t.Fatalf("ReplaceEvents: %v", err)
		}
	}

	uc := New(l, repo, interp, parser, nil)
	uc.clock = func() time.Time { return testNow }
	n := 0
	uc.reconciler = NewReconciler(parser, func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	return uc, l
}
