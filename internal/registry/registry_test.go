package registry

import (
	"sync"
	"testing"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault_SeedsBuiltins(t *testing.T) {
	r := NewDefault()

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Gaming", list[0].Title)
	assert.Equal(t, "Work", list[1].Title)
}

func TestFind_CaseInsensitive(t *testing.T) {
	r := NewDefault()

	for _, q := range []string{"gaming", "GAMING", "Gaming", "  gaming "} {
		a, ok := r.Find(q)
		require.True(t, ok, q)
		assert.Equal(t, "🎮", a.Icon)
	}

	_, ok := r.Find("diet")
	assert.False(t, ok)
}

func TestAppend_TrimsAndDefaultsIcon(t *testing.T) {
	r := NewDefault()

	a, err := r.Append("  Music  ", "   ")
	require.NoError(t, err)
	assert.Equal(t, "Music", a.Title)
	assert.Equal(t, domain.FallbackIcon, a.Icon)

	b, err := r.Append("Learning", " 📘 ")
	require.NoError(t, err)
	assert.Equal(t, "📘", b.Icon)

	found, ok := r.Find("music")
	require.True(t, ok)
	assert.Equal(t, a, found)
	assert.Equal(t, 4, r.Len())
}

func TestAppend_RejectsDuplicateTitle(t *testing.T) {
	r := NewDefault()

	_, err := r.Append("gaming", "🕹️")
	assert.ErrorIs(t, err, domain.ErrDuplicateActivity)
	assert.Equal(t, 2, r.Len())

	a, _ := r.Find("Gaming")
	assert.Equal(t, "🎮", a.Icon)
}

func TestAppend_RejectsBlankTitle(t *testing.T) {
	r := New()

	_, err := r.Append("   ", "🎯")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Zero(t, r.Len())
}

func TestNew_DropsCollidingSeeds(t *testing.T) {
	r := New(
		domain.ActivityKind{Title: "Diet", Icon: "🥗"},
		domain.ActivityKind{Title: "DIET", Icon: "🍎"},
	)

	require.Equal(t, 1, r.Len())
	a, _ := r.Find("diet")
	assert.Equal(t, "🥗", a.Icon)
}

func TestList_ReturnsCopy(t *testing.T) {
	r := NewDefault()

	list := r.List()
	list[0].Title = "Changed"

	a, ok := r.Find("gaming")
	require.True(t, ok)
	assert.Equal(t, "Gaming", a.Title)
}

func TestAppend_Concurrent(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Append("Chess Club", "♟️")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}
