package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(4)

	require.NotNil(t, tracker)
	require.Zero(t, tracker.Collisions())

	require.NotNil(t, NewTracker(-1))
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(0)

	require.True(t, tracker.Track(0x1234567890abcdef, Key{SampleSize: 100, Attempt: 0}))
	require.True(t, tracker.Track(0xfedcba0987654321, Key{SampleSize: 100, Attempt: 1}))
	require.Zero(t, tracker.Collisions())

	owner, ok := tracker.Owner(0xfedcba0987654321)
	require.True(t, ok)
	require.Equal(t, Key{SampleSize: 100, Attempt: 1}, owner)

	_, ok = tracker.Owner(42)
	require.False(t, ok)
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker(0)

	require.True(t, tracker.Track(7, Key{SampleSize: 10, Attempt: 0}))
	require.False(t, tracker.Track(7, Key{SampleSize: 20, Attempt: 3}))
	require.Equal(t, 1, tracker.Collisions())

	owner, _ := tracker.Owner(7)
	require.Equal(t, Key{SampleSize: 10, Attempt: 0}, owner, "first claim keeps the seed")
}

func TestTracker_SameKeyTwice(t *testing.T) {
	tracker := NewTracker(0)

	key := Key{SampleSize: 5, Attempt: 2}
	require.True(t, tracker.Track(99, key))
	require.True(t, tracker.Track(99, key))
	require.Zero(t, tracker.Collisions())
}
