// =============================================================================
// moxbox - Edition Lookup Tables
// =============================================================================
//
// This module holds the two static lookup tables that drive edition
// resolution:
//
//   1. Code table: Deckbox uses its own codes for a handful of sets, so a
//      few Moxfield edition codes need remapping. Codes absent from the
//      table pass through unchanged.
//
//   2. Name table: Deckbox decides which set a card belongs to from the
//      Edition column (the set NAME), which Moxfield does not export.
//      Codes absent from the table resolve to an empty name; that is a
//      best-effort miss, never an error.
//
// Both tables are immutable for the life of the process once built. A
// configuration file may overlay additional entries at startup, but the
// compiled-in data is the complete default behavior.
//
// =============================================================================

package editions

import "strings"

// =============================================================================
// STATIC DATA
// =============================================================================

// defaultCodes maps a Moxfield edition code to the Deckbox edition code
// for the known exceptions.
var defaultCodes = map[string]string{
	"PLST": "PLIST",
	"3ED":  "3E",
	"F11":  "FNMP",
	"MIR":  "MI",
	"ICE":  "IA",
	"ULG":  "GU",
}

// defaultNames maps a Moxfield edition code to the Deckbox set name.
var defaultNames = map[string]string{
	"ISD":  "Innistrad",
	"INR":  "Innistrad Remastered",
	"CMM":  "Commander Masters",
	"BLC":  "Bloomburrow Commander",
	"TDM":  "Tarkir: Dragonstorm",
	"OTC":  "Outlaws of Thunder Junction Commander",
	"MH3":  "Modern Horizons 3",
	"M13":  "Magic 2013",
	"DSK":  "Duskmourn: House of Horror",
	"EOE":  "Edge of Eternities",
	"M3C":  "Modern Horizons 3 Commander",
	"TDC":  "Tarkir: Dragonstorm Commander",
	"AVR":  "Avacyn Restored",
	"MRD":  "Mirrodin",
	"LTR":  "The Lord of the Rings: Tales of Middle-earth",
	"ONE":  "Phyrexia: All Will Be One",
	"MKC":  "Murders at Karlov Manor Commander",
	"BLB":  "Bloomburrow",
	"EOC":  "Edge of Eternities Commander",
	"LTC":  "The Lord of the Rings: Tales of Middle-earth Commander",
	"C20":  "Commander 2020",
	"SLD":  "Secret Lair Drop Series",
	"DKA":  "Dark Ascension",
	"LCC":  "The Lost Caverns of Ixalan Commander",
	"EOS":  "Edge of Eternities: Stellar Sights",
	"FDN":  "Foundations",
	"CLU":  "Ravnica: Clue Edition",
	"SCG":  "Scourge",
	"3ED":  "Revised Edition",
	"PLST": "The List",
	"C21":  "Commander 2021",
	"M14":  "Magic 2014 Core Set",
	"M12":  "Magic 2012",
	"2X2":  "Double Masters 2022",
	"FNMP": "Friday Night Magic",
	"DOM":  "Dominaria",
	"DSC":  "Duskmourn: House of Horror Commander",
	"AKH":  "Amonkhet",
	"SOM":  "Scars of Mirrodin",
	"SPG":  "Special Guests",
	"RVR":  "Ravnica Remastered",
	"C13":  "Commander 2013",
	"TOR":  "Torment",
	"DIS":  "Dissension",
	"OGW":  "Oath of the Gatewatch",
	"MBS":  "Mirrodin Besieged",
	"MH2":  "Modern Horizons 2",
	"HOU":  "Hour of Devastation",
	"BRR":  "The Brothers' War Retro Artifacts",
	"40K":  "Warhammer 40,000",
	"MH1":  "Modern Horizons",
	"SCD":  "Starter Commander Decks",
	"2XM":  "Double Masters",
	"F11":  "Friday Night Magic",
	"MIR":  "Mirage",
	"ICE":  "Ice Age",
	"ULG":  "Urza's Legacy",
}

// =============================================================================
// TABLES
// =============================================================================

// Tables holds the edition code and name lookup tables used by the
// converter. Tables are built once at startup and never mutated afterwards.
type Tables struct {
	codes map[string]string
	names map[string]string
}

// Default returns a Tables seeded with the compiled-in lookup data.
func Default() *Tables {
	t := &Tables{
		codes: make(map[string]string, len(defaultCodes)),
		names: make(map[string]string, len(defaultNames)),
	}
	for code, mapped := range defaultCodes {
		t.codes[code] = mapped
	}
	for code, name := range defaultNames {
		t.names[code] = name
	}
	return t
}

// Merge overlays additional entries onto the tables. Keys are normalized
// before insertion, so overlay files may use any casing. Overlay entries
// win over compiled-in entries with the same key.
//
// Merge is intended for startup configuration only; it must not be called
// once conversion has begun.
func (t *Tables) Merge(codes, names map[string]string) {
	for code, mapped := range codes {
		t.codes[Normalize(code)] = strings.TrimSpace(mapped)
	}
	for code, name := range names {
		t.names[Normalize(code)] = strings.TrimSpace(name)
	}
}

// Normalize canonicalizes a raw edition code for table lookup:
// surrounding whitespace is stripped and the code is uppercased.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResolveCode returns the Deckbox edition code for a normalized input
// code. Codes without a table entry pass through unchanged.
func (t *Tables) ResolveCode(norm string) string {
	if mapped, ok := t.codes[norm]; ok {
		return mapped
	}
	return norm
}

// ResolveName returns the Deckbox set name for a normalized input code,
// or "" when the code is unknown. An unknown code is not an error.
func (t *Tables) ResolveName(norm string) string {
	return t.names[norm]
}

// LookupName returns the set name for a normalized input code and whether
// the code is present in the name table.
func (t *Tables) LookupName(norm string) (string, bool) {
	name, ok := t.names[norm]
	return name, ok
}

// Codes returns a copy of the code table, for display purposes.
func (t *Tables) Codes() map[string]string {
	out := make(map[string]string, len(t.codes))
	for k, v := range t.codes {
		out[k] = v
	}
	return out
}

// Names returns a copy of the name table, for display purposes.
func (t *Tables) Names() map[string]string {
	out := make(map[string]string, len(t.names))
	for k, v := range t.names {
		out[k] = v
	}
	return out
}
