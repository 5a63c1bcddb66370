package engine

// Catalog is the full symbol alphabet: the 22 Hebrew letter names.
// Symbols are interchangeable identifiers; the engine never interprets them.
var Catalog = []SymbolID{
	"alef", "bet", "gimel", "dalet", "he", "vav", "zayin", "het",
	"tet", "yod", "kaf", "lamed", "mem", "nun", "samekh", "ayin",
	"pe", "tsadi", "qof", "resh", "shin", "tav",
}

// glyphs maps symbol names to their letter glyphs for display.
var glyphs = map[SymbolID]rune{
	"alef": 'א', "bet": 'ב', "gimel": 'ג', "dalet": 'ד',
	"he": 'ה', "vav": 'ו', "zayin": 'ז', "het": 'ח',
	"tet": 'ט', "yod": 'י', "kaf": 'כ', "lamed": 'ל',
	"mem": 'מ', "nun": 'נ', "samekh": 'ס', "ayin": 'ע',
	"pe": 'פ', "tsadi": 'צ', "qof": 'ק', "resh": 'ר',
	"shin": 'ש', "tav": 'ת',
}

// Glyph returns the display rune for a symbol, or '?' for unknown ids.
func Glyph(s SymbolID) rune {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return '?'
}

// SymbolSubset returns the first n catalog symbols, capped at the catalog
// size. Sessions size the subset to the level's pair variety so small
// boards use few distinct symbols.
func SymbolSubset(n int) []SymbolID {
	if n > len(Catalog) {
		n = len(Catalog)
	}
	if n < 1 {
		n = 1
	}
	out := make([]SymbolID, n)
	copy(out, Catalog[:n])
	return out
}
