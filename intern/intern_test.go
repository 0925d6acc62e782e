package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lscript/intern"
)

func TestIntern(t *testing.T) {
	data := []string{
		"",
		"a",
		"abc",
		"?",
		"quote",
		"very long",
		" ",
		"verylong",
	}

	table := intern.New()
	ids := map[string]intern.ID{}
	for i := 0; i < 3; i++ {
		for _, s := range data {
			id := table.Intern(s, false)
			assert.Equal(t, s, table.Value(id), "id: %v", id)

			if prev, ok := ids[s]; ok {
				assert.Equal(t, prev, id)
			}
			ids[s] = id
		}
	}

	assert.Equal(t, len(data), table.Len())
	for _, s := range data {
		assert.Equal(t, 3, table.RefCount(ids[s]))
	}
}

func TestInternDistinct(t *testing.T) {
	table := intern.New()

	a := table.Intern("foo", false)
	b := table.Intern("bar", false)
	c := table.Intern("foo", false)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, 2, table.RefCount(a))
	assert.Equal(t, 1, table.RefCount(b))
	assert.Equal(t, 2, table.Len())
}

func TestRelease(t *testing.T) {
	table := intern.New()

	a := table.Intern("foo", false)
	table.Intern("foo", false)

	table.Release(a)
	assert.Equal(t, 1, table.RefCount(a))
	assert.Equal(t, "foo", table.Value(a))

	table.Release(a)
	_, ok := table.Lookup(a)
	assert.False(t, ok)
	assert.Equal(t, 0, table.RefCount(a))
	assert.Equal(t, 0, table.Len())

	// releasing again is a no-op
	table.Release(a)
	assert.Equal(t, 0, table.Len())

	// the freed slot is reused
	b := table.Intern("bar", false)
	assert.Equal(t, a, b)
	assert.Equal(t, "bar", table.Value(b))
}

func TestEternal(t *testing.T) {
	table := intern.New()

	q := table.Intern("quote", true)
	require.True(t, table.IsEternal(q))

	table.Release(q)
	table.Release(q)

	s, ok := table.Lookup(q)
	assert.True(t, ok)
	assert.Equal(t, "quote", s)
	assert.Equal(t, 1, table.Len())
}

func TestEternalUpgrade(t *testing.T) {
	table := intern.New()

	id := table.Intern("quote", false)
	assert.False(t, table.IsEternal(id))

	assert.Equal(t, id, table.Intern("quote", true))
	assert.True(t, table.IsEternal(id))

	table.Release(id)
	table.Release(id)
	assert.Equal(t, "quote", table.Value(id))
}

func TestLookupUnknown(t *testing.T) {
	table := intern.New()

	for _, id := range []intern.ID{-1, 0, 10} {
		_, ok := table.Lookup(id)
		assert.False(t, ok)
		assert.Equal(t, "", table.Value(id))
		assert.False(t, table.IsEternal(id))
	}
	assert.Equal(t, "intern.ID(3)", intern.ID(3).String())
}
