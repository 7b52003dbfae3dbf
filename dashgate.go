// Package dashgate gates access to the Autobot capital dashboard across its
// two deployment modes and orchestrates money movement on top of that gate.
//
// A single build serves two audiences from two hostnames: the public
// deposit-only surface and the private full-control surface. Every view
// navigation is classified by serving origin, combined with session presence,
// and resolved to a render or a redirect. Payment actions report through the
// payments package independent of the gate decision.
package dashgate

import "net/http"

// name is the tracer name used for spans emitted by this package.
const name = "github.com/stripe-autobot/dashgate"

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc
