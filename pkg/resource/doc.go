// Package resource contains the payload models carried by webhook events.
//
// Models are generated from schema/events.yaml. Scalar members are pointers so
// an absent member stays distinguishable from a zero value, and members the
// schema does not describe are kept in Extra so a decode followed by an encode
// reproduces the payload.
//
// Models of non-core families are compiled in unless the payhook_minimal build
// tag is set; see package event for the family build tags.
package resource

//go:generate go run ../../cmd/eventgen -schema ../../schema/events.yaml -out ../..
