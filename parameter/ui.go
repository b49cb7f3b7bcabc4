package parameter

// Arena layout
const (
	// ArenaPaddingX reserves columns right of the arena for the scoreboard
	ArenaPaddingX = 16

	// ArenaPaddingY reserves rows below the arena
	ArenaPaddingY = 2

	// ArenaMinOffsetX is the smallest left offset of the arena border
	ArenaMinOffsetX = 2

	// ArenaMinOffsetY leaves room for the status line above the arena
	ArenaMinOffsetY = 3

	// ArenaMinSize is the floor applied when the viewport forces a shrink
	ArenaMinSize = 8

	// Default arena geometry (interior columns, physical rows)
	ArenaDefaultX      = 2
	ArenaDefaultY      = 3
	ArenaDefaultWidth  = 48
	ArenaDefaultHeight = 16

	// ArenaMaxWidth and ArenaMaxHeight keep logical coordinates inside a byte
	ArenaMaxWidth  = 255
	ArenaMaxHeight = 127
)

// 256-color palette ids
const (
	ColorPlayer   = 84
	ColorSpeed    = 51
	ColorScore    = 208
	ColorEat      = 195
	ColorKill     = 210
	ColorCannibal = 190

	// ColorCannibalHead marks the head of a snake in cannibal mode
	ColorCannibalHead = 196

	ColorFoodNone     = 41
	ColorFoodSpeed    = 226
	ColorFoodNourish  = 213
	ColorFoodCannibal = 167

	ColorBorder = 245
	ColorStatus = 250
	ColorDebug  = 244
)

// Glyphs
const (
	GlyphUpperHalf = '▀'
	GlyphLowerHalf = '▄'

	GlyphFoodNone     = '\U000f025b'
	GlyphFoodSpeed    = '\uf0e7'
	GlyphFoodNourish  = '\U000f1a61'
	GlyphFoodCannibal = '\ue7a1'

	GlyphCornerTL = '╔'
	GlyphCornerTR = '╗'
	GlyphCornerBL = '╚'
	GlyphCornerBR = '╝'
	GlyphHoriz    = '═'
	GlyphVert     = '║'
)
