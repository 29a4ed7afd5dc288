package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageProgressTouch(t *testing.T) {
	t.Run("new language seeds day one", func(t *testing.T) {
		p := LanguageProgress{}
		streak := p.Touch("indonesian", "2026-08-31")
		assert.Equal(t, 1, streak.DaysActive)
		assert.Equal(t, "2026-08-31", streak.LastActive)
	})

	t.Run("same day is idempotent", func(t *testing.T) {
		p := LanguageProgress{}
		p.Touch("indonesian", "2026-08-31")
		for i := 0; i < 3; i++ {
			streak := p.Touch("indonesian", "2026-08-31")
			assert.Equal(t, 1, streak.DaysActive)
		}
	})

	t.Run("new day increments", func(t *testing.T) {
		p := LanguageProgress{"indonesian": {DaysActive: 5, LastActive: "2026-08-30"}}
		streak := p.Touch("indonesian", "2026-08-31")
		assert.Equal(t, 6, streak.DaysActive)
		assert.Equal(t, "2026-08-31", streak.LastActive)
	})

	t.Run("languages track independently", func(t *testing.T) {
		p := LanguageProgress{}
		p.Touch("indonesian", "2026-08-30")
		p.Touch("indonesian", "2026-08-31")
		streak := p.Touch("japanese", "2026-08-31")
		assert.Equal(t, 1, streak.DaysActive)
		assert.Equal(t, 2, p["indonesian"].DaysActive)
	})

	t.Run("switching back same day does not double count", func(t *testing.T) {
		p := LanguageProgress{}
		p.Touch("indonesian", "2026-08-31")
		p.Touch("japanese", "2026-08-31")
		streak := p.Touch("indonesian", "2026-08-31")
		assert.Equal(t, 1, streak.DaysActive)
	})
}

func TestRole(t *testing.T) {
	assert.True(t, RoleWhisper.Valid())
	assert.True(t, RoleVoice.Valid())
	assert.True(t, RoleOracle.Valid())
	assert.False(t, Role("Wizard").Valid())
	assert.False(t, Role("").Valid())

	assert.True(t, RoleOracle.Unlimited())
	assert.False(t, RoleWhisper.Unlimited())
	assert.False(t, RoleVoice.Unlimited())
}

func TestProfileHasCredits(t *testing.T) {
	p := &Profile{Role: RoleWhisper, Credits: 5}
	assert.True(t, p.HasCredits(5))
	assert.False(t, p.HasCredits(6))

	oracle := &Profile{Role: RoleOracle, Credits: 0}
	assert.True(t, oracle.HasCredits(1000000))
}
