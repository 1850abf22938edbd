package daqerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestDriverErrorMatchesCode(t *testing.T) {
	err := fmt.Errorf("create task: %w", &DriverError{Code: DuplicateTask, Message: "Task name already in use", TaskName: "T1"})

	assert.True(t, errors.Is(err, DuplicateTask))
	assert.False(t, errors.Is(err, InvalidTask))
	assert.Equal(t, KindDuplicateTask, KindOf(err))
	assert.Equal(t, DuplicateTask, CodeOf(err))
	assert.Contains(t, err.Error(), "Status Code: -200089")
	assert.Contains(t, err.Error(), "Task Name: T1")
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{errors.New("other"), KindNone},
		{New(-200000, "x"), KindDriver},
		{New(ReadBufferTooSmall, ""), KindReadBufferTooSmall},
		{New(WriteBufferTooSmall, ""), KindWriteBufferTooSmall},
		{New(InvalidAttributeValue, ""), KindInvalidAttributeValue},
		{New(AttributeNotSupportedInTaskContext, ""), KindAttributeNotSupportedInTaskContext},
		{&TransportError{Code: codes.Unavailable, Message: "down"}, KindTransportFailure},
		{&FeatureNotSupportedError{Feature: "waveform reads"}, KindFeatureNotSupported},
		{&MismatchedArraySizesError{What: "channels", Want: 2, Got: 3}, KindMismatchedInputArraySizes},
		{fmt.Errorf("wrapped: %w", InvalidRangeOfObjectsSyntaxInString), KindDriver},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, KindOf(c.err), "%v", c.err)
	}
}

func TestCheck(t *testing.T) {
	t.Cleanup(ResetFilters)

	require.NoError(t, Check(Success, nil))

	err := Check(InvalidTask, func(c Code) string { return "bad task" })
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "bad task", de.Message)

	var got []Warning
	SetHandler(func(w Warning) { got = append(got, w) })
	require.NoError(t, Check(StoppedBeforeDone, nil))
	require.Len(t, got, 1)
	assert.True(t, errors.Is(got[0], StoppedBeforeDone))
}

func TestWarningFilters(t *testing.T) {
	t.Cleanup(ResetFilters)

	var delivered int
	SetHandler(func(Warning) { delivered++ })

	AddFilter(Filter{Action: ActionError, Match: MatchCode(ReadNotCompleteBeforeSampClk)})
	err := Warn(&DriverWarning{Code: ReadNotCompleteBeforeSampClk})
	var dw *DriverWarning
	require.ErrorAs(t, err, &dw)
	assert.Equal(t, ReadNotCompleteBeforeSampClk, dw.Code)

	require.NoError(t, Warn(&DriverWarning{Code: StoppedBeforeDone}))
	assert.Equal(t, 1, delivered)

	AddFilter(Filter{Action: ActionIgnore, Match: MatchResource})
	require.NoError(t, Warn(&ResourceWarning{TaskName: "T"}))
	assert.Equal(t, 1, delivered)

	AddFilter(Filter{Action: ActionOnce, Match: MatchCode(PALValueConflict)})
	require.NoError(t, Warn(&DriverWarning{Code: PALValueConflict}))
	require.NoError(t, Warn(&DriverWarning{Code: PALValueConflict}))
	assert.Equal(t, 2, delivered)
}

func TestSuppress(t *testing.T) {
	t.Cleanup(ResetFilters)
	SetDefaultAction(ActionError)

	err := Suppress(func() error {
		return Warn(&DriverWarning{Code: StoppedBeforeDone})
	})
	require.NoError(t, err)
	assert.Error(t, Warn(&DriverWarning{Code: StoppedBeforeDone}))

	want := New(InvalidTask, "")
	assert.Same(t, want, Suppress(func() error { return want }))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("error")
	require.NoError(t, err)
	assert.Equal(t, ActionError, a)

	_, err = ParseAction("loud")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithContext(t *testing.T) {
	err := WithContext(New(InvalidAttributeValue, "bad"), "T1", "ai0")
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "T1", de.TaskName)
	assert.Equal(t, "ai0", de.ChannelName)

	plain := errors.New("plain")
	assert.Same(t, plain, WithContext(plain, "T1", ""))
}
