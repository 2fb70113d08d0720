package lambda

// IsValue reports whether t is a value. Only abstractions are values; a
// variable or an irreducible application is a normal form but not a value.
func IsValue(t Term) bool {
	_, ok := t.(Abs)
	return ok
}

// frame records an application on the path from the root to the redex and
// which side of it the path continues into.
type frame struct {
	app   App
	inFun bool
}

// Reduce performs a single call-by-value, left-to-right beta step on t.
// If t cannot take a step, because it is a value or because it is stuck on
// a free variable, Reduce returns nil and false.
//
// The function position of an application is reduced to a value before the
// argument is touched, and the argument is reduced to a value before the
// redex fires.
func Reduce(t Term) (Term, bool) {
	var path []frame
	cur := t
	for {
		app, ok := cur.(App)
		if !ok {
			// variables are stuck, abstractions are done
			return nil, false
		}
		if abs, ok := app.Fun.(Abs); ok && IsValue(app.Arg) {
			return rebuild(path, Subst(abs.Body, app.Arg, abs.Arg)), true
		}
		if !IsValue(app.Fun) {
			path = append(path, frame{app: app, inFun: true})
			cur = app.Fun
			continue
		}
		path = append(path, frame{app: app})
		cur = app.Arg
	}
}

// rebuild plugs the contractum back into the applications on path,
// innermost first. Subterms off the path are shared with the input.
func rebuild(path []frame, t Term) Term {
	for i := len(path) - 1; i >= 0; i-- {
		f := path[i]
		if f.inFun {
			t = App{Fun: t, Arg: f.app.Arg}
		} else {
			t = App{Fun: f.app.Fun, Arg: t}
		}
	}
	return t
}
