package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"param-supplier/fixture"
)

func TestRow(t *testing.T) {
	t.Parallel()

	row := fixture.Row{"s": "text", "n": 42, "nil": nil, "b": true}

	v, ok := row.Get("n")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = row.Get("nil")
	assert.False(t, ok, "nil field is absent")

	_, ok = row.Get("missing")
	assert.False(t, ok)

	s, ok := row.Text("s")
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	s, ok = row.Text("n")
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok = row.Text("b")
	assert.True(t, ok)
	assert.Equal(t, "true", s)

	_, ok = row.Text("nil")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "n", "nil", "s"}, row.Names())
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := fixture.Set{
		"TestB": {{"a": 1}},
		"TestA": {},
	}

	_, ok := set.Rows("TestA")
	assert.False(t, ok, "empty rows count as missing")

	_, ok = set.Rows("TestC")
	assert.False(t, ok)

	rows, ok := set.Rows("TestB")
	assert.True(t, ok)
	assert.Len(t, rows, 1)

	assert.Equal(t, []string{"TestA", "TestB"}, set.Methods())
}
