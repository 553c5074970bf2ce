package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cv = []string{"Welcome", "Personal", "Skills", "Experience", "Courses", "Looking For"}

func TestNewRejectsEmpty(t *testing.T) {
	s, err := New()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoTabs)
}

func TestRightPressesWrapAround(t *testing.T) {
	s, err := New(cv...)
	require.NoError(t, err)

	want := []int{1, 2, 3, 4, 5, 0, 1}
	for i, w := range want {
		s.Next()
		assert.Equal(t, w, s.Selected(), "press %d", i+1)
	}
}

func TestPreviousFromFirstWrapsToLast(t *testing.T) {
	s, err := New(cv...)
	require.NoError(t, err)

	s.Previous()
	assert.Equal(t, 5, s.Selected())
	assert.Equal(t, "Looking For", s.Title())
	s.Previous()
	assert.Equal(t, 4, s.Selected())
}

func TestNextThenPreviousIsIdentity(t *testing.T) {
	for n := 1; n <= 8; n++ {
		titles := make([]string, n)
		for i := range titles {
			titles[i] = string(rune('A' + i))
		}
		s, err := New(titles...)
		require.NoError(t, err)

		for start := 0; start < n; start++ {
			assert.Equal(t, start, s.Selected())
			s.Next()
			s.Previous()
			assert.Equal(t, start, s.Selected())
			s.Previous()
			s.Next()
			assert.Equal(t, start, s.Selected())
			s.Next()
		}

		for i := 0; i < 3*n; i++ {
			s.Next()
			assert.GreaterOrEqual(t, s.Selected(), 0)
			assert.Less(t, s.Selected(), n)
		}
	}
}

func TestSingleTabStaysSelected(t *testing.T) {
	s, err := New("Only")
	require.NoError(t, err)
	s.Next()
	assert.Equal(t, 0, s.Selected())
	s.Previous()
	assert.Equal(t, 0, s.Selected())
}

func TestTitlesIsACopy(t *testing.T) {
	in := []string{"a", "b"}
	s, err := New(in...)
	require.NoError(t, err)

	in[0] = "changed"
	got := s.Titles()
	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, s.Titles())
	assert.Equal(t, 2, s.Len())
}
