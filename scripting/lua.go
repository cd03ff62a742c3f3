// Package scripting lets a caller supply a Lua predicate to keep or drop
// candidate plays after the core solve finishes, rather than hard-coding
// any particular play-ranking policy into the solver itself.
package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/laeos/wwfsolve/move"
)

// Filter loads a Lua script from path and returns a function that keeps
// only the Solutions for which the script's global "accept" function
// returns true. Each call of the returned function loads the script into
// a fresh Lua state and then calls accept once per solution, passing a
// table with the play's row, col, vertical, word, score, and played
// fields; accept must not have side effects that depend on call order.
func Filter(path string) (func([]move.Solution) ([]move.Solution, error), error) {
	return func(sols []move.Solution) ([]move.Solution, error) {
		L := lua.NewState()
		defer L.Close()
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("scripting: loading %s: %w", path, err)
		}
		accept := L.GetGlobal("accept")
		fn, ok := accept.(*lua.LFunction)
		if !ok {
			return nil, fmt.Errorf("scripting: %s does not define a global 'accept' function", path)
		}

		var kept []move.Solution
		for _, s := range sols {
			L.Push(fn)
			L.Push(playTable(L, s))
			if err := L.PCall(1, 1, nil); err != nil {
				return nil, fmt.Errorf("scripting: calling accept: %w", err)
			}
			ret := L.Get(-1)
			L.Pop(1)
			if lua.LVAsBool(ret) {
				kept = append(kept, s)
			}
		}
		return kept, nil
	}, nil
}

func playTable(L *lua.LState, s move.Solution) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("row", lua.LNumber(s.Start.Row))
	t.RawSetString("col", lua.LNumber(s.Start.Col))
	t.RawSetString("vertical", lua.LBool(s.Start.Vertical))
	t.RawSetString("word", lua.LString(s.Word))
	t.RawSetString("score", lua.LNumber(s.Score))
	t.RawSetString("played", lua.LString(s.Played))
	return t
}
