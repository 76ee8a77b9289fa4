package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChallengeByID(t *testing.T) {
	challenge, ok := ChallengeByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Build Your First Website", challenge.Title)
	assert.Equal(t, 100, challenge.Points)
	assert.Equal(t, CategoryTech, challenge.Category)

	_, ok = ChallengeByID(9999)
	assert.False(t, ok)
}

func TestChallenges_WellFormed(t *testing.T) {
	seen := make(map[int]bool)
	categories := make(map[Category]bool)
	for _, c := range Categories() {
		categories[c] = true
	}

	for _, challenge := range Challenges() {
		assert.False(t, seen[challenge.ID], "duplicate challenge id %d", challenge.ID)
		seen[challenge.ID] = true
		assert.Greater(t, challenge.Points, 0, "challenge %d has non-positive points", challenge.ID)
		assert.True(t, categories[challenge.Category], "challenge %d has unknown category %q", challenge.ID, challenge.Category)
		assert.NotEmpty(t, challenge.Title)
	}
}

func TestBadges_RequirementsResolve(t *testing.T) {
	seen := make(map[int]bool)
	for _, badge := range Badges() {
		assert.False(t, seen[badge.ID], "duplicate badge id %d", badge.ID)
		seen[badge.ID] = true
		assert.NotEmpty(t, badge.RequiredChallengeIDs, "badge %d has no requirements", badge.ID)

		for _, id := range badge.RequiredChallengeIDs {
			_, ok := ChallengeByID(id)
			assert.True(t, ok, "badge %d requires unknown challenge %d", badge.ID, id)
		}
	}
}

func TestBadgeByID(t *testing.T) {
	badge, ok := BadgeByID(5)
	assert.True(t, ok)
	assert.Equal(t, "Creative Mind", badge.Name)
	assert.ElementsMatch(t, []int{13, 14, 15}, badge.RequiredChallengeIDs)

	_, ok = BadgeByID(42)
	assert.False(t, ok)
}
