// Package zconfig carries the small set of constants a host needs to
// work with the object language: well-known identifiers from spec §3's
// table, and the builtin reroute table from spec §4.6. It mirrors
// funvibe-funxy's internal/config package — a flat, exported-constants
// file rather than a loaded configuration object, because none of this
// varies at runtime.
package zconfig

import "github.com/wikirun/zcore/internal/zid"

// Well-known identifiers, named after spec §3's table. Built with
// zid.MustParse because each is a literal, reviewed constant (spec §7).
var (
	Z1K1 = zid.MustParse("Z1K1") // type tag of a map term

	Z2K1 = zid.MustParse("Z2K1") // persistent object: id
	Z2K2 = zid.MustParse("Z2K2") // persistent object: value
	Z2K3 = zid.MustParse("Z2K3") // persistent object: labels
	Z2K4 = zid.MustParse("Z2K4") // persistent object: aliases
	Z2K5 = zid.MustParse("Z2K5") // persistent object: short description

	Z3K1 = zid.MustParse("Z3K1") // key: value type
	Z3K2 = zid.MustParse("Z3K2") // key: key id
	Z3K3 = zid.MustParse("Z3K3") // key: label
	Z3K4 = zid.MustParse("Z3K4") // key: is identity

	Z4K1 = zid.MustParse("Z4K1") // type: identity
	Z4K2 = zid.MustParse("Z4K2") // type: keys
	Z4K3 = zid.MustParse("Z4K3") // type: validator
	Z4K4 = zid.MustParse("Z4K4") // type: equality
	Z4K5 = zid.MustParse("Z4K5") // type: display
	Z4K6 = zid.MustParse("Z4K6") // type: reading
	Z4K7 = zid.MustParse("Z4K7") // type: converters (1)
	Z4K8 = zid.MustParse("Z4K8") // type: converters (2)

	Z6K1 = zid.MustParse("Z6K1") // string object: raw string

	Z7K1 = zid.MustParse("Z7K1") // function call: target function

	Z8K1 = zid.MustParse("Z8K1") // function: arguments
	Z8K2 = zid.MustParse("Z8K2") // function: return type
	Z8K3 = zid.MustParse("Z8K3") // function: testers
	Z8K4 = zid.MustParse("Z8K4") // function: implementations
	Z8K5 = zid.MustParse("Z8K5") // function: identity

	Z9K1 = zid.MustParse("Z9K1") // reference: referent identifier

	Z14K1 = zid.MustParse("Z14K1") // implementation: function
	Z14K2 = zid.MustParse("Z14K2") // implementation: composition
	Z14K3 = zid.MustParse("Z14K3") // implementation: code
	Z14K4 = zid.MustParse("Z14K4") // implementation: builtin

	Z18K1 = zid.MustParse("Z18K1") // argument placeholder: argument key

	Z20K1 = zid.MustParse("Z20K1") // test case: function
	Z20K2 = zid.MustParse("Z20K2") // test case: call
	Z20K3 = zid.MustParse("Z20K3") // test case: result validation

	Z40K1 = zid.MustParse("Z40K1") // boolean: value tag

	Z802K1 = zid.MustParse("Z802K1") // if: condition
	Z802K2 = zid.MustParse("Z802K2") // if: then
	Z802K3 = zid.MustParse("Z802K3") // if: else

	Z813K1 = zid.MustParse("Z813K1") // is empty typed list: list

	Z844K1 = zid.MustParse("Z844K1") // boolean equality: first
	Z844K2 = zid.MustParse("Z844K2") // boolean equality: second

	// Type tags (bare, K-less), used on Z1K1.
	Z2  = zid.MustParse("Z2")
	Z3  = zid.MustParse("Z3")
	Z4  = zid.MustParse("Z4")
	Z6  = zid.MustParse("Z6")
	Z7  = zid.MustParse("Z7")
	Z8  = zid.MustParse("Z8")
	Z9  = zid.MustParse("Z9")
	Z14 = zid.MustParse("Z14")
	Z18 = zid.MustParse("Z18")
	Z20 = zid.MustParse("Z20")
	Z40 = zid.MustParse("Z40")

	Z41 = zid.MustParse("Z41") // boolean: true
	Z42 = zid.MustParse("Z42") // boolean: false
)

// Well-known tag string forms, compared against raw string payloads: the
// first three against a Z1K1 type tag, TrueTag/FalseTag against a
// boolean's Z40K1 value tag.
const (
	TypeTagFunctionCall = "Z7"
	TypeTagReference    = "Z9"
	TypePlaceholder     = "Z18"
	TrueTag             = "Z41"
	FalseTag            = "Z42"
)

// BuiltinReroute maps a builtin id to the persistent implementation it
// is rerouted to, per spec §4.6's two escape hatches. Rerouting keeps the
// minimal built-in set small: only Z902/Z913/Z944 need a primitive
// implementation.
var BuiltinReroute = map[string]zid.ID{
	"Z966": zid.MustParse("Z17569"), // string equality
	"Z989": zid.MustParse("Z15872"), // list equality
}

// Minimal built-in ids (spec §4.6's table).
const (
	BuiltinIf              = "Z902"
	BuiltinIsEmptyTypedList = "Z913"
	BuiltinBoolEqual       = "Z944"
)
