package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

type appendCall struct {
	table string
	rows  int
}

type mockSession struct {
	execs     []string
	appends   []appendCall
	execErr   error
	appendErr map[string]error
	closeErr  error
	closed    int
}

func (m *mockSession) Exec(_ context.Context, statement string) error {
	m.execs = append(m.execs, statement)
	return m.execErr
}

func (m *mockSession) Append(_ context.Context, table string, frame *ecomload.Frame) (int64, error) {
	if err := m.appendErr[table]; err != nil {
		return 0, err
	}
	m.appends = append(m.appends, appendCall{table: table, rows: frame.Len()})
	return int64(frame.Len()), nil
}

func (m *mockSession) Close() error {
	m.closed++
	return m.closeErr
}

type mockConnector struct {
	session *mockSession
	err     error
	opened  []string
}

func (m *mockConnector) Open(_ context.Context, dbPath string) (ecomload.Session, error) {
	m.opened = append(m.opened, dbPath)
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

type mockReader struct {
	frames map[string]*ecomload.Frame
	err    error
	reads  []string
}

func (m *mockReader) ReadFrame(path string) (*ecomload.Frame, error) {
	m.reads = append(m.reads, path)
	if m.err != nil {
		return nil, m.err
	}
	if f, ok := m.frames[path]; ok {
		return f, nil
	}
	return &ecomload.Frame{Columns: []string{"id"}, Rows: [][]any{{int64(1)}}}, nil
}

type recordingLogger struct {
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
