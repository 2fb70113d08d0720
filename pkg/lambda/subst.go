package lambda

// Subst replaces the free occurrences of name in t with replacement.
//
// Substitution never captures: when an abstraction binds a name that is free
// in replacement, the binder is renamed to a fresh name first. The fresh name
// is chosen outside the free variables of the body and of replacement, and
// differs from name itself, so the renamed binder cannot be hit by the
// substitution that follows.
func Subst(t Term, replacement Term, name string) Term {
	return subst(t, replacement, name, nil)
}

// subst carries the free variables of replacement down the tree so they are
// computed at most once per call.
func subst(t Term, replacement Term, name string, replFree map[string]struct{}) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return replacement
		}
		return v
	case App:
		return App{
			Fun: subst(v.Fun, replacement, name, replFree),
			Arg: subst(v.Arg, replacement, name, replFree),
		}
	case Abs:
		if v.Arg == name {
			return v
		}
		if replFree == nil {
			replFree = FreeVars(replacement)
		}
		if _, clash := replFree[v.Arg]; !clash {
			return Abs{Arg: v.Arg, Body: subst(v.Body, replacement, name, replFree)}
		}
		fresh := Fresh(v.Arg, FreeVars(v.Body), replFree, map[string]struct{}{name: {}})
		body := Subst(v.Body, Var{Name: fresh}, v.Arg)
		return Abs{Arg: fresh, Body: subst(body, replacement, name, replFree)}
	default:
		return t
	}
}
