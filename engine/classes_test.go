package engine_test

import "rangekit/engine"

type Actor struct {
	engine.ObjectBase
	Health int
}

type Pawn struct {
	Actor
	Controller string
}

var (
	ActorClass = engine.RegisterClass("Actor", engine.ObjectClass, func() *Actor { return &Actor{Health: 100} })
	PawnClass  = engine.RegisterClass("Pawn", ActorClass, func() *Pawn { return &Pawn{} })
)
