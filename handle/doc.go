/*
Package handle centralizes the capability checks for pointer-like values.

A pointer-like value is anything that can be null-checked and dereferenced:

  - raw pointers (*T) and interface values holding pointers,
  - reference-counted handles ([Shared]),
  - weak handles ([Weak]) which must be pinned before use,
  - engine handles (weak/soft object pointers, subclass handles) that implement
    [Validator] and [Unwrapper].

Adapters never inspect these representations themselves. They call [IsNull],
[Deref] and [Truthy], which resolve the capabilities in a fixed order:

 1. an explicit unwrap capability ([Unwrapper]) yields the raw form, which is
    then compared against nil,
 2. a [Dereferencer] is asked for its pointee,
 3. otherwise the value itself is treated as directly nil-comparable.

# Weak handles

Validity of a [Weak] handle does not keep its referent alive. Deref pins the
handle and returns the strong pointer for the current element only; callers
must not retain it past the step that received it.
*/
package handle
