package board

// StandardBoard is the only built-in premultiplier layout: the fixed
// 15x15 WWF pattern. Each rune is one of:
//
//	'-' no multiplier
//	'D' double letter   'T' triple letter
//	'd' double word     't' triple word
//
// Multipliers apply only to newly placed tiles; a played tile already on
// the board always scores at face value regardless of what is printed
// underneath it here.
const StandardLayoutName = "WWF"

var StandardBoard []string

func init() {
	StandardBoard = []string{
		`---t--T-T--t---`,
		`--D--d---d--D--`,
		`-D--D-----D--D-`,
		`t--T---d---T--t`,
		`--D---D-D---D--`,
		`-d---T---T---d-`,
		`T---D-----D---T`,
		`---d-------d---`,
		`T---D-----D---T`,
		`-d---T---T---d-`,
		`--D---D-D---D--`,
		`t--T---d---T--t`,
		`-D--D-----D--D-`,
		`--D--d---d--D--`,
		`---t--T-T--t---`,
	}
}
