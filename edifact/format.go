// Package edifact names the message formats and scoping helpers the
// evaluator's DI registry keys off. It carries no parsing of edifact wire
// data itself — that is out of scope, left to the seed ingestion tooling
// that produces a Scope for a given evaluation.
package edifact

import "fmt"

// Format is one of the accepted edifact message formats.
type Format string

const (
	APERAK  Format = "APERAK"
	COMDIS  Format = "COMDIS"
	CONTRL  Format = "CONTRL"
	IFTSTA  Format = "IFTSTA"
	INSRPT  Format = "INSRPT"
	INVOIC  Format = "INVOIC"
	MSCONS  Format = "MSCONS"
	ORDCHG  Format = "ORDCHG"
	ORDERS  Format = "ORDERS"
	ORDRSP  Format = "ORDRSP"
	PRICAT  Format = "PRICAT"
	QUOTES  Format = "QUOTES"
	REMADV  Format = "REMADV"
	REQOTE  Format = "REQOTE"
	PARTIN  Format = "PARTIN"
	UTILMD  Format = "UTILMD"
	UTILMDG Format = "UTILMDG"
	UTILMDS Format = "UTILMDS"
	UTILMDW Format = "UTILMDW"
	UTILTS  Format = "UTILTS"
)

// knownFormats backs Valid; declared once rather than switching on every
// call.
var knownFormats = map[Format]bool{
	APERAK: true, COMDIS: true, CONTRL: true, IFTSTA: true, INSRPT: true,
	INVOIC: true, MSCONS: true, ORDCHG: true, ORDERS: true, ORDRSP: true,
	PRICAT: true, QUOTES: true, REMADV: true, REQOTE: true, PARTIN: true,
	UTILMD: true, UTILMDG: true, UTILMDS: true, UTILMDW: true, UTILTS: true,
}

// Valid reports whether f is one of the accepted edifact formats.
func (f Format) Valid() bool { return knownFormats[f] }

func (f Format) String() string { return string(f) }

// Scope identifies the sub-message an evaluation refers to: a path into
// the edifact seed a leaf's entered text or requirement-constraint data
// should be read from. It is opaque to the evaluator core, which only
// ever passes it through to the registered collaborators unchanged.
type Scope string

func (s Scope) String() string { return string(s) }

// Join appends a path segment to s, separated by "/". Scope values built
// this way read like "Dokument/1/Positionen/3/Zusatzangaben".
func (s Scope) Join(segment string) Scope {
	if s == "" {
		return Scope(segment)
	}
	return Scope(fmt.Sprintf("%s/%s", s, segment))
}
