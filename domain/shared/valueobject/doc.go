// Package valueobject contains the constrained value types of the
// order-taking domain. Every type wraps a single primitive behind an
// unexported field and can only be constructed through its validating
// factory, so a value of any of these types is guaranteed to satisfy
// its invariant for its whole lifetime. Values are immutable; a change
// is always expressed by constructing a new value.
//
// Factories take a field label used only to contextualize error
// messages, and return *shared.DomainError on invalid input. The
// closed choices ProductCode and OrderQuantity are sealed interfaces
// with exactly two implementations each; consumers discriminate with a
// type switch.
package valueobject
