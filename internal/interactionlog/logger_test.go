package interactionlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

type stubSink struct {
	entries []domain.InteractionEntry
	err     error
}

func (s *stubSink) Append(_ context.Context, entry domain.InteractionEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func TestRecordPrefersPrimary(t *testing.T) {
	primary := &stubSink{}
	mirror := &stubSink{}
	l := New(primary, mirror)

	l.Record(context.Background(), domain.InteractionEntry{Message: "hello"})

	require.Len(t, primary.entries, 1)
	require.Empty(t, mirror.entries)
}

func TestRecordFallsBackToMirror(t *testing.T) {
	primary := &stubSink{err: errors.New("sheets unavailable")}
	mirror := &stubSink{}
	l := New(primary, mirror)

	l.Record(context.Background(), domain.InteractionEntry{Message: "hello"})

	require.Len(t, mirror.entries, 1)
	require.Equal(t, "hello", mirror.entries[0].Message)
}

func TestRecordSetsTimestamp(t *testing.T) {
	primary := &stubSink{}
	l := New(primary, nil)

	l.Record(context.Background(), domain.InteractionEntry{Message: "hello"})

	require.Len(t, primary.entries, 1)
	require.False(t, primary.entries[0].Timestamp.IsZero())
}

func TestRecordWithNoSinksDoesNotPanic(t *testing.T) {
	l := New(nil, nil)
	l.Record(context.Background(), domain.InteractionEntry{Message: "hello"})
}

func TestRecordBothSinksFailingDoesNotPanic(t *testing.T) {
	l := New(&stubSink{err: errors.New("down")}, &stubSink{err: errors.New("down too")})
	l.Record(context.Background(), domain.InteractionEntry{Message: "hello"})
}
