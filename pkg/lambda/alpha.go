package lambda

import "fmt"

// AlphaEqual reports whether a and b are equal up to the names of bound
// variables. Free variables must carry identical names.
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, map[string]int{}, map[string]int{}, 1)
}

// envA and envB map a bound name to the level of its innermost binder;
// level 0 is reserved for "not bound".
func alphaEqual(a, b Term, envA, envB map[string]int, level int) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		if !ok {
			return false
		}
		la, lb := envA[x.Name], envB[y.Name]
		if la != 0 || lb != 0 {
			return la == lb
		}
		return x.Name == y.Name
	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		oldA, oldB := envA[x.Arg], envB[y.Arg]
		envA[x.Arg], envB[y.Arg] = level, level
		eq := alphaEqual(x.Body, y.Body, envA, envB, level+1)
		envA[x.Arg], envB[y.Arg] = oldA, oldB
		return eq
	case App:
		y, ok := b.(App)
		if !ok {
			return false
		}
		return alphaEqual(x.Fun, y.Fun, envA, envB, level) &&
			alphaEqual(x.Arg, y.Arg, envA, envB, level)
	default:
		return false
	}
}

// Canonical renames every binder of t to x0, x1, ... in pre-order, skipping
// names that occur free in t. Alpha-equivalent terms have equal canonical
// forms.
func Canonical(t Term) Term {
	free := FreeVars(t)
	idx := 0
	next := func() string {
		for {
			name := fmt.Sprintf("x%d", idx)
			idx++
			if _, clash := free[name]; !clash {
				return name
			}
		}
	}
	bindings := make(map[string]string)
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch v := tt.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return v
		case Abs:
			canon := next()
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return Abs{Arg: canon, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}
