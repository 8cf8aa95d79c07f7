package singlell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/linked-list/internal/log"
	"github.com/lueurxax/linked-list/internal/singlell/mocks"
)

func newIntList(values ...int) *linkedList[int] {
	l := New[int](log.NewNop()).(*linkedList[int])
	for _, v := range values {
		l.Add(v)
	}

	return l
}

// assertChain walks the list and checks the head/tail bookkeeping.
func assertChain[T comparable](t *testing.T, l *linkedList[T], want []T) {
	t.Helper()

	if len(want) == 0 {
		assert.Nil(t, l.head)
		assert.Nil(t, l.tail)
		assert.Equal(t, 0, l.Len())

		return
	}

	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)
	assert.Nil(t, l.tail.next)

	var (
		got  []T
		last *node[T]
	)

	for n := l.head; n != nil && len(got) <= len(want); n = n.next {
		got = append(got, n.value)
		last = n
	}

	assert.Equal(t, want, got)
	assert.Same(t, l.tail, last)
	assert.Equal(t, len(want), l.Len())
}

func Test_linkedList_Add(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{name: "single", values: []string{"a"}},
		{name: "several", values: []string{"a", "b", "c", "d"}},
		{name: "duplicates", values: []string{"a", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[string](log.NewNop()).(*linkedList[string])
			for i, v := range tt.values {
				l.Add(v)

				tail, ok := l.Tail()
				require.True(t, ok)
				assert.Equal(t, v, tail)
				assertChain(t, l, tt.values[:i+1])
			}

			head, ok := l.Head()
			require.True(t, ok)
			assert.Equal(t, tt.values[0], head)
		})
	}
}

func Test_linkedList_Remove(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		remove  int
		wantErr error
		want    []int
	}{
		{name: "empty", remove: 5, wantErr: ErrEmptyList},
		{name: "only node", values: []int{1}, remove: 1},
		{name: "head", values: []int{1, 2, 3}, remove: 1, want: []int{2, 3}},
		{name: "tail", values: []int{1, 2, 3}, remove: 3, want: []int{1, 2}},
		{name: "interior", values: []int{1, 2, 3, 4}, remove: 3, want: []int{1, 2, 4}},
		{name: "first occurrence only", values: []int{7, 1, 7}, remove: 7, want: []int{1, 7}},
		{name: "not found", values: []int{1, 2, 3}, remove: 5, wantErr: ErrNotFound, want: []int{1, 2, 3}},
		{name: "not found single", values: []int{1}, remove: 2, wantErr: ErrNotFound, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newIntList(tt.values...)

			err := l.Remove(tt.remove)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assertChain(t, l, tt.want)
		})
	}
}

func Test_linkedList_Remove_headKeepsTail(t *testing.T) {
	l := newIntList(1, 2, 3)
	tail := l.tail

	require.NoError(t, l.Remove(1))

	assert.Equal(t, 2, l.head.value)
	assert.Same(t, tail, l.tail)
}

func Test_linkedList_Remove_tailUnlinksPredecessor(t *testing.T) {
	l := newIntList(1, 2, 3)
	second := l.head.next

	require.NoError(t, l.Remove(3))

	assert.Same(t, second, l.tail)
	assert.Nil(t, second.next)
}

func Test_linkedList_Remove_detachesNode(t *testing.T) {
	l := newIntList(1, 2, 3)
	removed := l.head.next

	require.NoError(t, l.Remove(2))

	assert.Nil(t, removed.next)
}

func Test_linkedList_scenario(t *testing.T) {
	l := newIntList(1, 2, 3)
	assertChain(t, l, []int{1, 2, 3})

	require.NoError(t, l.Remove(2))
	assertChain(t, l, []int{1, 3})

	require.NoError(t, l.Remove(1))
	assertChain(t, l, []int{3})

	require.NoError(t, l.Remove(3))
	assertChain(t, l, nil)

	err := l.Remove(5)
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Equal(t, EmptyList, OutcomeOf(err))
	assertChain(t, l, nil)

	// the list is usable again after being drained
	l.Add(4)
	assertChain(t, l, []int{4})
}

func Test_linkedList_Print(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p := mocks.NewMockPrinter(gomock.NewController(t))
		p.EXPECT().PrintEmpty().Return(nil).Times(1)

		assert.NoError(t, newIntList().Print(p))
	})
	t.Run("in order", func(t *testing.T) {
		p := mocks.NewMockPrinter(gomock.NewController(t))
		gomock.InOrder(
			p.EXPECT().PrintValue(1).Return(nil),
			p.EXPECT().PrintValue(3).Return(nil),
			p.EXPECT().PrintSeparator().Return(nil),
		)

		l := newIntList(1, 2, 3)
		require.NoError(t, l.Remove(2))
		assert.NoError(t, l.Print(p))
		assertChain(t, l, []int{1, 3})
	})
	t.Run("printer error", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		p := mocks.NewMockPrinter(gomock.NewController(t))
		p.EXPECT().PrintValue(1).Return(errBroken).Times(1)

		assert.ErrorIs(t, newIntList(1, 2).Print(p), errBroken)
	})
	t.Run("writer", func(t *testing.T) {
		buf := new(bytes.Buffer)

		require.NoError(t, newIntList().Print(NewWriterPrinter(buf)))
		assert.Equal(t, "The list is empty\n", buf.String())

		buf.Reset()
		require.NoError(t, newIntList(1, 2).Print(NewWriterPrinter(buf)))
		assert.Equal(t, "1\n2\n\n\n", buf.String())
	})
}

func Test_linkedList_Values(t *testing.T) {
	assert.Empty(t, newIntList().Values())
	assert.Equal(t, []int{1, 2, 3}, newIntList(1, 2, 3).Values())

	_, ok := newIntList().Head()
	assert.False(t, ok)

	_, ok = newIntList().Tail()
	assert.False(t, ok)
}

func Test_linkedList_Range(t *testing.T) {
	var seen []int

	newIntList(1, 2, 3, 4).Range(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})

	assert.Equal(t, []int{1, 2}, seen)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Outcome
		str  string
	}{
		{err: nil, want: Removed, str: "removed"},
		{err: ErrNotFound, want: NotFound, str: "not_found"},
		{err: ErrEmptyList, want: EmptyList, str: "empty_list"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			got := OutcomeOf(tt.err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}
