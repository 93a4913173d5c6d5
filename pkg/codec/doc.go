// Package codec holds the JSON building blocks shared by the resource models
// and the event dispatcher: typed decoding with required-field checks,
// object-tagged sums keyed on the "object" member, and the live-or-deleted
// wrapper used by retrieve and delete responses.
//
// Every function in this package is a pure function of its input. Nothing
// here blocks, and nothing here panics on malformed input.
package codec
