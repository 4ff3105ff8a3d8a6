package world

// ReferenceRows is the default 16x16 maze
var ReferenceRows = []string{
	"################",
	"#..............#",
	"#.......########",
	"#..............#",
	"#......##......#",
	"#......##......#",
	"#..............#",
	"###............#",
	"##.............#",
	"#......####..###",
	"#......#.......#",
	"#......#.......#",
	"#..............#",
	"#......#########",
	"#..............#",
	"################",
}

// Reference returns a fresh copy of the default maze
func Reference() *Grid {
	g, err := ParseGrid(ReferenceRows)
	if err != nil {
		panic("world: reference map invalid: " + err.Error())
	}
	return g
}
