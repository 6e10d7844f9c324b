package component

import "vecerka/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
