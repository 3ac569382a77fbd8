// =============================================================================
// moxbox - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - csvparser / xlsxparser
//   - deckbox
//   - validation
//
// =============================================================================

package types

// =============================================================================
// ROW TYPES
// =============================================================================

// Row is one inventory line, keyed by column header.
// Missing columns read as the empty string via Get.
type Row map[string]string

// Get returns the value for a column, or "" when the column is absent.
func (r Row) Get(col string) string {
	if r == nil {
		return ""
	}
	return r[col]
}

// Document is a fully parsed inventory file.
// Both the CSV and XLSX parsers produce this shape, so everything
// downstream is agnostic to the input format.
type Document struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows as header -> value maps.
	Rows []Row

	// SourceFile is the path the document was read from.
	SourceFile string
}

// =============================================================================
// MOXFIELD INPUT COLUMNS
// =============================================================================

// Column names as they appear in a Moxfield inventory export.
// The Edition column holds a set code (e.g. "MIR"), not a set name.
const (
	ColCount           = "Count"
	ColName            = "Name"
	ColEdition         = "Edition"
	ColCollectorNumber = "Collector Number"
	ColCondition       = "Condition"
	ColLanguage        = "Language"
	ColFoil            = "Foil"
	ColTags            = "Tags"
	ColPurchasePrice   = "Purchase Price"
)

// InputColumns lists the recognized Moxfield export columns.
// Extra columns in an export are ignored; missing ones read as empty.
var InputColumns = []string{
	ColCount,
	ColName,
	ColEdition,
	ColCollectorNumber,
	ColCondition,
	ColLanguage,
	ColFoil,
	ColTags,
	ColPurchasePrice,
}

// =============================================================================
// DECKBOX OUTPUT COLUMNS
// =============================================================================

// Deckbox import column names referenced by the converter.
const (
	OutCount          = "Count"
	OutTradelistCount = "Tradelist Count"
	OutName           = "Name"
	OutEdition        = "Edition"
	OutEditionCode    = "Edition Code"
	OutCardNumber     = "Card Number"
	OutCondition      = "Condition"
	OutLanguage       = "Language"
	OutFoil           = "Foil"
	OutTags           = "Tags"
	OutMyPrice        = "My Price"
)

// OutputColumns is the exact column order of the Deckbox import format.
// Header and every data row must emit all 19 columns in this order.
var OutputColumns = []string{
	OutCount,
	OutTradelistCount,
	OutName,
	OutEdition,
	OutEditionCode,
	OutCardNumber,
	OutCondition,
	OutLanguage,
	OutFoil,
	"Signed",
	"Artist Proof",
	"Altered Art",
	"Misprint",
	"Promo",
	"Textless",
	"Printing Id",
	"Printing Note",
	OutTags,
	OutMyPrice,
}
