// Package event decodes webhook event envelopes and dispatches their payloads
// to typed variants.
//
// Every known event type has its own variant struct, for example
// *PaymentIntentSucceeded for "payment_intent.succeeded", holding the decoded
// resource in its Object field. A type the build does not know decodes to
// *Unknown, which keeps the raw payload.
//
// Two decoding modes are offered. Parse and DispatchLazy are lenient: an
// unknown type is never an error, and a payload that does not fit its type
// leaves Event.Payload nil and logs a warning. ParseStrict and Dispatch report
// the same situations as *DecodeError, *UnknownTypeError and
// *SchemaMismatchError.
//
// # Families
//
// Variants are grouped into families. FamilyCore is always compiled in. The
// others are compiled in by default; building with the payhook_minimal tag
// drops them all, and payhook_<family> tags (payhook_billing, payhook_treasury,
// ...) add individual families back:
//
//	go build -tags payhook_minimal,payhook_billing ./...
//
// A type whose family is not compiled in decodes exactly like a type the
// server introduced after this build.
package event
