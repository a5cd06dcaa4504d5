// Package collision detects derived trial seeds that land on the same value.
package collision

// Key identifies the trial a seed was derived for.
type Key struct {
	SampleSize int
	Attempt    int
}

// Tracker records which trial owns each derived seed. Two trials sharing a seed
// would draw identical point sets, so the caller re-derives on a collision.
type Tracker struct {
	owners     map[uint64]Key // seed → owning trial
	collisions int
}

// NewTracker creates a tracker sized for about n seeds.
func NewTracker(n int) *Tracker {
	return &Tracker{owners: make(map[uint64]Key, max(n, 0))}
}

// Track claims seed for key. It returns false, and counts a collision, when the
// seed already belongs to a different trial. Re-tracking the same key is a no-op.
func (t *Tracker) Track(seed uint64, key Key) bool {
	if owner, exists := t.owners[seed]; exists {
		if owner == key {
			return true
		}
		t.collisions++

		return false
	}

	t.owners[seed] = key

	return true
}

// Owner returns the trial that claimed seed.
func (t *Tracker) Owner(seed uint64) (Key, bool) {
	k, ok := t.owners[seed]
	return k, ok
}

// Collisions returns the number of rejected claims.
func (t *Tracker) Collisions() int {
	return t.collisions
}
