package behavioral

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestChainOfResponsibilityDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChainOfResponsibilityDemo(context.Background(), &buf))

	assert.Equal(t, []string{
		"EvenHandler handled: 2",
		"OddHandler handled: 3",
		"EvenHandler handled: 4",
		"OddHandler handled: 5",
		"EvenHandler handled: 6",
		"OddHandler handled: 7",
		"EvenHandler handled: 8",
		"OddHandler handled: 9",
		"OddHandler handled: 11",
		"OddHandler handled: 15",
	}, lines(&buf))
}

func TestChain_UnhandledNumberIsDropped(t *testing.T) {
	var buf bytes.Buffer
	head := Chain(&EvenHandler{})
	head.Handle(&buf, 3)
	assert.Empty(t, buf.String())

	assert.Nil(t, Chain())
}

func TestChainOfResponsibilityDemo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := ChainOfResponsibilityDemo(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestCommandDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CommandDemo(context.Background(), &buf))
	assert.Equal(t, []string{"Hello, Alice!", "Goodbye, Bob!"}, lines(&buf))
}

func TestInvoker_NoCommandIsNoop(t *testing.T) {
	var buf bytes.Buffer
	var inv Invoker
	inv.ExecuteCommand(&buf)
	assert.Empty(t, buf.String())
	assert.Empty(t, inv.History())
}

func TestInvoker_History(t *testing.T) {
	var buf bytes.Buffer
	var inv Invoker
	inv.SetCommand(HelloCommand{Recipient: "x"})
	inv.ExecuteCommand(&buf)
	inv.ExecuteCommand(&buf)
	inv.SetCommand(GoodbyeCommand{Recipient: "y"})
	inv.ExecuteCommand(&buf)

	h := inv.History()
	assert.Equal(t, []string{"hello", "hello", "goodbye"}, h)

	h[0] = "mutated"
	assert.Equal(t, "hello", inv.History()[0], "history must be returned as a copy")
}

func TestIteratorDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, IteratorDemo(context.Background(), &buf))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, lines(&buf))
}

func TestSimpleIntArray_IteratorsAreIndependent(t *testing.T) {
	src := []int{1, 2}
	arr := NewSimpleIntArray(src...)
	src[0] = 99

	a := arr.CreateIterator()
	b := arr.CreateIterator()
	require.True(t, a.HasNext())
	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 1, b.Next())
	assert.Equal(t, 2, a.Next())
	assert.False(t, a.HasNext())
	assert.True(t, b.HasNext())
}

func TestSliceIter(t *testing.T) {
	it := Slice([]string{"a", "b", "c"})

	require.True(t, it.Next())
	assert.Equal(t, "a", it.Value())

	var rest []string
	for v := range it.All() {
		rest = append(rest, v)
	}
	assert.Equal(t, []string{"b", "c"}, rest)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestSliceIter_ClosedYieldsNothing(t *testing.T) {
	it := Slice([]int{1, 2, 3})
	require.NoError(t, it.Close())
	assert.False(t, it.Next())
}

func TestSliceIter_AllStopsEarly(t *testing.T) {
	it := Slice([]int{1, 2, 3})
	for v := range it.All() {
		if v == 2 {
			break
		}
	}
	require.True(t, it.Next())
	assert.Equal(t, 3, it.Value())
}

func TestMediatorDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MediatorDemo(context.Background(), &buf))
	assert.Equal(t, []string{
		"UserB received: Hello, UserB!",
		"UserA received: Hi, UserA! How are you?",
	}, lines(&buf))
}

func TestMediator_UnknownSenderIgnored(t *testing.T) {
	var buf bytes.Buffer
	chat := &ChatMediator{}
	a := NewUser("UserA", chat, &buf)
	b := NewUser("UserB", chat, &buf)
	chat.SetUserA(a)
	chat.SetUserB(b)

	stranger := NewUser("Stranger", chat, &buf)
	stranger.Send("hi")
	assert.Empty(t, buf.String())
}
