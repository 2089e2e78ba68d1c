package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStream = `{"Time":"2026-10-14T10:00:00Z","Action":"run","Package":"example.com/shop","Test":"TestCart"}
{"Time":"2026-10-14T10:00:00.1Z","Action":"output","Package":"example.com/shop","Test":"TestCart","Output":"=== RUN   TestCart\n"}
not json at all
{"Time":"2026-10-14T10:00:00.2Z","Action":"pass","Package":"example.com/shop","Test":"TestCart","Elapsed":0.1}

{"Package":"example.com/shop"}
{"Time":"2026-10-14T10:00:00.3Z","Action":"pass","Package":"example.com/shop","Elapsed":0.2}
`

func TestDecodeEvents(t *testing.T) {
	var events []TestEvent

	malformed, err := DecodeEvents(context.Background(), strings.NewReader(sampleStream), func(event TestEvent) {
		events = append(events, event)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, malformed)
	require.Len(t, events, 4)

	assert.Equal(t, ActionRun, events[0].Action)
	assert.Equal(t, "TestCart", events[0].Test)
	assert.Equal(t, "=== RUN   TestCart\n", events[1].Output)
	assert.Equal(t, ActionPass, events[2].Action)
	assert.InDelta(t, 0.1, events[2].Elapsed, 1e-9)
	assert.Empty(t, events[3].Test)
	assert.Equal(t, 2026, events[3].Time.Year())
}

func TestDecodeEvents_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0

	_, err := DecodeEvents(ctx, strings.NewReader(sampleStream), func(TestEvent) { calls++ })
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestDecodeEvents_ReadError(t *testing.T) {
	_, err := DecodeEvents(context.Background(), failingReader{}, func(TestEvent) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestDecodeEvents_Empty(t *testing.T) {
	malformed, err := DecodeEvents(context.Background(), strings.NewReader(""), func(TestEvent) {
		t.Fatal("no events expected")
	})
	require.NoError(t, err)
	assert.Zero(t, malformed)
}

func TestDecodeEvents_OversizedLineIsSkipped(t *testing.T) {
	huge := `{"Action":"output","Package":"example.com/shop","Test":"TestCart","Output":"` +
		strings.Repeat("x", 2*maxEventLine) + `"}`
	stream := `{"Action":"run","Package":"example.com/shop","Test":"TestCart"}` + "\n" +
		huge + "\n" +
		`{"Action":"pass","Package":"example.com/shop","Test":"TestCart"}`

	var actions []string

	malformed, err := DecodeEvents(context.Background(), strings.NewReader(stream), func(event TestEvent) {
		actions = append(actions, event.Action)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, malformed)
	assert.Equal(t, []string{ActionRun, ActionPass}, actions)
}
