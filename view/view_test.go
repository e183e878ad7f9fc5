package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	for _, sec := range append(Sections(), All) {
		got, err := ParseSection(sec.String())
		require.NoError(t, err)
		assert.Equal(t, sec, got)
	}
	got, err := ParseSection(" EPC ")
	require.NoError(t, err)
	assert.Equal(t, EPC, got)

	got, err = ParseSection("")
	require.NoError(t, err)
	assert.Equal(t, All, got)

	_, err = ParseSection("map")
	assert.Error(t, err)
}

func TestStateTransitions(t *testing.T) {
	var s State
	assert.True(t, s.Shows(Cashflow))

	s = s.Scroll(10, DefaultStickyOffset)
	assert.False(t, s.Scrolled)
	s = s.Scroll(200, DefaultStickyOffset)
	assert.True(t, s.Scrolled)

	s2 := s.Activate(EPC)
	assert.Equal(t, All, s.Active, "transitions do not mutate the receiver")
	assert.True(t, s2.Shows(EPC))
	assert.False(t, s2.Shows(Opex))

	s3 := s2.OpenDrawer(Opex)
	assert.True(t, s3.DrawerOpen())
	assert.Equal(t, Opex, s3.Active)
	assert.True(t, s3.Shows(Opex))
	assert.False(t, s3.Shows(EPC))

	s4 := s3.CloseDrawer()
	assert.False(t, s4.DrawerOpen())
	assert.Equal(t, Opex, s4.Active)
	assert.True(t, s4.Scrolled)
}
