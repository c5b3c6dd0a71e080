package world

import "sync/atomic"

// ObjectIDGenerator hands out unique object ids for all world entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: entities (players, destructibles)
//	0x20000000 - 0x2FFFFFFF: spawned objects (projectiles, walls, platforms)
type ObjectIDGenerator struct {
	nextEntityID atomic.Uint32
	nextSpawnID  atomic.Uint32
}

// NewObjectIDGenerator creates a generator with range bases set.
func NewObjectIDGenerator() *ObjectIDGenerator {
	g := &ObjectIDGenerator{}
	g.nextEntityID.Store(0x10000000)
	g.nextSpawnID.Store(0x20000000)
	return g
}

// NextEntityID generates the next unique entity id.
func (g *ObjectIDGenerator) NextEntityID() uint32 {
	return g.nextEntityID.Add(1)
}

// NextSpawnID generates the next unique spawned-object id.
func (g *ObjectIDGenerator) NextSpawnID() uint32 {
	return g.nextSpawnID.Add(1)
}
