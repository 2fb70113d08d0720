package lambda

import (
	"strconv"
	"strings"
)

// FreeVars returns the set of names occurring free in t.
func FreeVars(t Term) map[string]struct{} {
	free := make(map[string]struct{})
	collectFree(t, map[string]int{}, free)
	return free
}

func collectFree(t Term, bound map[string]int, free map[string]struct{}) {
	switch v := t.(type) {
	case Var:
		if bound[v.Name] == 0 {
			free[v.Name] = struct{}{}
		}
	case Abs:
		bound[v.Arg]++
		collectFree(v.Body, bound, free)
		bound[v.Arg]--
	case App:
		collectFree(v.Fun, bound, free)
		collectFree(v.Arg, bound, free)
	}
}

// IsFree reports whether name occurs free in t.
func IsFree(name string, t Term) bool {
	switch v := t.(type) {
	case Var:
		return v.Name == name
	case Abs:
		// shadowing: occurrences under a binder of the same name are bound
		if v.Arg == name {
			return false
		}
		return IsFree(name, v.Body)
	case App:
		return IsFree(name, v.Fun) || IsFree(name, v.Arg)
	default:
		return false
	}
}

// Fresh derives a name from base that is not a member of any avoid set.
// Trailing digits of base are dropped and the smallest positive counter
// that does not collide is appended, so "x" becomes "x1" and "x1" becomes
// "x2" when "x1" is taken. A base that does not start with a letter, such
// as a symbol binder "+", uses the stem "v" so the result is one identifier.
func Fresh(base string, avoid ...map[string]struct{}) string {
	stem := strings.TrimRight(base, "0123456789")
	if stem == "" || !isLetter(stem[0]) {
		stem = "v"
	}
	taken := func(name string) bool {
		for _, set := range avoid {
			if _, ok := set[name]; ok {
				return true
			}
		}
		return false
	}
	for i := 1; ; i++ {
		name := stem + strconv.Itoa(i)
		if !taken(name) {
			return name
		}
	}
}
