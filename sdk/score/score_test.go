package score

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sorted(notes []Note) []Note {
	out := slices.Clone(notes)
	slices.SortFunc(out, func(a, b Note) int {
		switch {
		case a.Pitch != b.Pitch:
			return int(a.Pitch) - int(b.Pitch)
		case a.Duration != b.Duration:
			return int(a.Duration) - int(b.Duration)
		case a.Position != b.Position:
			return int(a.Position) - int(b.Position)
		default:
			return int(a.Channel) - int(b.Channel)
		}
	})
	return out
}

func TestFromMapsEveryElement(t *testing.T) {
	s := From([]Tuple3{{48, 4, 0}, {52, 4, 4}})

	assert := assert.New(t)
	assert.Equal(2, s.Len())
	assert.Equal([]Note{NewNote(48, 4, 0, 0), NewNote(52, 4, 4, 0)}, s.Notes())
}

func TestAddIsChainable(t *testing.T) {
	s := New()
	ret := s.Add(Tuple3{60, 4, 0}).AddNote(64, 4, 4, 1).Add(NewNote(67, 4, 8, 2))

	assert := assert.New(t)
	assert.Same(s, ret)
	assert.Equal(3, s.Len())
	assert.Equal(NewNote(64, 4, 4, 1), s.Notes()[1])
}

func TestExtendKeepsOrder(t *testing.T) {
	s := New().Add(Tuple3{1, 1, 1})
	s.Extend(Tuple4{2, 2, 2, 9}, Tuple3{3, 3, 3}, NewNote(4, 4, 4, 4))

	assert.Equal(t, []Note{
		NewNote(1, 1, 1, 0),
		NewNote(2, 2, 2, 9),
		NewNote(3, 3, 3, 0),
		NewNote(4, 4, 4, 4),
	}, s.Notes())
}

func TestExtendFromTypedSlices(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}})
	ret := ExtendFrom(s, []Tuple4{{2, 2, 2, 9}, {3, 3, 3, 9}})
	ExtendFrom(ret, []Note{NewNote(4, 4, 4, 4)})
	ExtendFrom(s, []Tuple3(nil))

	assert := assert.New(t)
	assert.Same(s, ret)
	assert.Equal([]Note{
		NewNote(1, 1, 1, 0),
		NewNote(2, 2, 2, 9),
		NewNote(3, 3, 3, 9),
		NewNote(4, 4, 4, 4),
	}, s.Notes())
}

func TestRemoveSwapsWithLast(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}})
	s.Remove(Tuple3{2, 2, 2})

	assert.Equal(t, []Note{
		NewNote(1, 1, 1, 0),
		NewNote(4, 4, 4, 0),
		NewNote(3, 3, 3, 0),
	}, s.Notes())
}

func TestRemoveOnlyFirstMatch(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}, {2, 2, 2}, {1, 1, 1}})
	s.RemoveNote(1, 1, 1, 0)

	// the trailing duplicate moves into the freed first slot
	assert.Equal(t, []Note{NewNote(1, 1, 1, 0), NewNote(2, 2, 2, 0)}, s.Notes())
}

func TestRemoveTakesEarliestDuplicate(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}, {2, 2, 2}, {1, 1, 1}, {3, 3, 3}})
	s.Remove(Tuple3{1, 1, 1})

	assert.Equal(t, []Note{
		NewNote(3, 3, 3, 0),
		NewNote(2, 2, 2, 0),
		NewNote(1, 1, 1, 0),
	}, s.Notes())
}

func TestRemoveMatchesAllFields(t *testing.T) {
	s := From([]Tuple4{{60, 4, 0, 1}})
	s.Remove(Tuple3{60, 4, 0})

	assert.Equal(t, 1, s.Len())
}

func TestRemoveThenAddRestoresMultiset(t *testing.T) {
	s := From([]Tuple3{{48, 4, 0}, {52, 4, 4}, {55, 4, 8}})
	before := sorted(s.Notes())

	n := NewNote(48, 4, 0, 0)
	s.Remove(n).Add(n)

	assert := assert.New(t)
	assert.Equal(3, s.Len())
	assert.Equal(before, sorted(s.Notes()))
	assert.NotEqual(n, s.Notes()[0])
}

func TestPurge(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
	s.Purge(Tuple3{1, 1, 1}, Tuple3{3, 3, 3}, Tuple3{9, 9, 9})

	assert.Equal(t, []Note{NewNote(2, 2, 2, 0)}, s.Notes())
}

func TestPurgeMissIsNoop(t *testing.T) {
	s := From([]Tuple3{{1, 1, 1}, {2, 2, 2}})
	before := s.Clone()
	s.Purge(Tuple3{7, 7, 7}, Tuple4{1, 1, 1, 3})

	assert.True(t, s.Equal(before))
}

func TestCapacityManagement(t *testing.T) {
	s := WithCapacity(8)

	assert := assert.New(t)
	assert.True(s.IsEmpty())
	assert.GreaterOrEqual(s.Cap(), 8)

	s.Reserve(20)
	assert.GreaterOrEqual(s.Cap(), 20)

	s.AddNote(60, 4, 0, 0).AddNote(62, 4, 4, 0)
	s.ShrinkTo(5)
	assert.Equal(5, s.Cap())
	assert.Equal(2, s.Len())

	s.ShrinkToFit()
	assert.Equal(2, s.Cap())

	s.ShrinkTo(10)
	assert.Equal(2, s.Cap())

	s.Clear()
	assert.True(s.IsEmpty())
	assert.Equal(2, s.Cap())
}

func TestNotesIsWritable(t *testing.T) {
	s := New().AddNote(60, 4, 0, 0)
	s.Notes()[0].Pitch = 61

	assert.Equal(t, uint8(61), s.Notes()[0].Pitch)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New().AddNote(60, 4, 0, 0)
	c := s.Clone()
	c.AddNote(62, 4, 4, 0)
	c.Notes()[0].Pitch = 10

	assert := assert.New(t)
	assert.Equal(1, s.Len())
	assert.Equal(uint8(60), s.Notes()[0].Pitch)
	assert.False(s.Equal(c))
}
