/*
Package engine models the host engine's reflection layer that the sequence
adapters call through: classes with single inheritance and lazily built
default objects, an object table that backs weak and soft handles, and the
dynamic cast primitives.

# Classes

Every concrete object type is registered once with [RegisterClass]:

	var ActorClass = engine.RegisterClass("Actor", engine.ObjectClass, func() *Actor { return &Actor{} })

The Go type is the class's key, so [StaticClass] and the casts can find the
class from a type parameter alone. Object types embed [ObjectBase].

# Casts

[Cast] is the type-check-and-cast: nil in, nil out, mismatch yields the zero
value. [ExactCast] additionally requires the exact class. [CastChecked] treats a
mismatch as fatal: the failure is logged at panic level through the package
logger (see [SetLogger]) and the goroutine panics.

# Handles

[WeakObjectPtr] observes an object through its object table slot and becomes
invalid when the object is destroyed. [SoftObjectPtr] names an object by path
and loads it on first use. [SubclassOf] is a class handle restricted to a base
class; [SoftClassPtr] names a class that is resolved on demand.
*/
package engine
