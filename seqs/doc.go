/*
Package seqs provides chainable adapters over Go iterators (iter.Seq) that
understand the engine's pointer-like values: raw pointers, object interfaces,
handle.Shared and handle.Weak, and the engine's object and class handles.

The package is split into two kinds of operations:

  - Lazy adapters: [Where], [WhereNot], [SafeWhere], [Select], [SelectNonNull],
    [NonNull], [NonNullRef], [Cast], [OfType] and friends. They return a new
    iter.Seq, do no work until iterated and re-run their source on every pass.
  - Terminal operations: [Count], [Sum], [Accumulate], [FirstOrDefault],
    [ToArray], [ToSet], [Lookup], [All], [Any], [None]. They consume the
    sequence once and return a value or an owning container.

# Null handling

No adapter dereferences an element without asking [handle.IsNull] or
[handle.Deref] first. Weak handles are pinned for the duration of a single
element, so a pointer yielded by [NonNullRef] must not be retained past the
consumer's step.

	actors := seqs.OfType[*Actor](level.Values()) // level is a *containers.Array[engine.Object]
	alive := seqs.Where(actors, (*Actor).IsAlive)
	total := seqs.SumFunc(alive, func(a *Actor) int { return a.Health })

# Defaults

Terminal operations that can run out of input ([Sum], [FirstOrDefault]) return
[Default], which is the type's identity value when it has one (see [Identity])
and the zero value otherwise.

# Failures

Everything is total except the checked casts ([CastChecked], [CastCheckedMode]),
which treat a mismatch as a programming error: it is logged through the engine
logger at panic level and the goroutine panics.
*/
package seqs
