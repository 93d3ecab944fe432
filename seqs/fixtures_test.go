package seqs_test

import "rangekit/engine"

type Actor struct {
	engine.ObjectBase
	Health int
}

func (a *Actor) IsAlive() bool {
	return a.Health > 0
}

type Pawn struct {
	Actor
}

type Item struct {
	engine.ObjectBase
	Weight float64
}

var (
	ActorClass = engine.RegisterClass("Actor", engine.ObjectClass, func() *Actor { return &Actor{} })
	PawnClass  = engine.RegisterClass("Pawn", ActorClass, func() *Pawn { return &Pawn{} })
	ItemClass  = engine.RegisterClass("Item", engine.ObjectClass, func() *Item { return &Item{} })
)

type Number int

func (n Number) IsEven() bool {
	return n%2 == 0
}

func isEven(n int) bool {
	return n%2 == 0
}

func newActor(name string, health int) *Actor {
	a := engine.NewObject[*Actor](name)
	a.Health = health
	return a
}
