package algebra

import (
	"testing"

	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// fakeSource is a minimal in-memory TripleSource used to exercise the
// algebra independently of internal/store, grounded on the five-triple
// corpus from the design notes:
//
//	(a,name,name-a) (b,name,name-b) (a,weight,weight-a) (b,size,size-b) (a,height,100)
type fakeSource struct {
	triples [][3]rdf.Term
}

func corpus() *fakeSource {
	id := rdf.Identifier
	return &fakeSource{triples: [][3]rdf.Term{
		{id("a"), id("name"), rdf.String("name-a")},
		{id("b"), id("name"), rdf.String("name-b")},
		{id("a"), id("weight"), rdf.String("weight-a")},
		{id("b"), id("size"), rdf.String("size-b")},
		{id("a"), id("height"), rdf.Integer(100)},
	}}
}

func (f *fakeSource) MatchTriples(pattern TriplePattern, solution rdf.Solution) rdf.Solutions {
	pos := 0
	return rdf.FuncSolutions(func() (rdf.Solution, bool) {
		for pos < len(f.triples) {
			t := f.triples[pos]
			pos++
			bindings := rdf.Solution{}
			ok := true
			for i, elem := range pattern {
				if elem.IsVar {
					if bound, has := solution.Get(elem.Name); has {
						if !bound.Equal(t[i]) {
							ok = false
							break
						}
					} else {
						bindings[elem.Name] = t[i]
					}
				} else if !elem.Term.Equal(t[i]) {
					ok = false
					break
				}
			}
			if ok {
				return solution.Merge(bindings), true
			}
		}
		return nil, false
	})
}

func id(s string) rdf.Term { return rdf.Identifier(s) }

// Scenario 1: SELECT ?id ?name WHERE { ?id name ?name }
func TestPattern_Scenario1(t *testing.T) {
	src := corpus()
	p := NewPattern(TriplePattern{Var("id"), Lit(id("name")), Var("name")}, src)

	got := rdf.Collect(p.Match(rdf.Solution{}))
	if len(got) != 2 {
		t.Fatalf("got %d solutions, want 2", len(got))
	}
}

// Scenario 2: two triples joined on ?id via PatternGroup.
func TestPatternGroup_Scenario2(t *testing.T) {
	src := corpus()
	group := NewPatternGroup(
		NewPattern(TriplePattern{Var("id"), Lit(id("name")), Var("name")}, src),
		NewPattern(TriplePattern{Var("id"), Lit(id("weight")), Var("weight")}, src),
	)

	got := rdf.Collect(group.Match(rdf.Solution{}))
	if len(got) != 1 {
		t.Fatalf("got %d solutions, want 1", len(got))
	}
	idVal, _ := got[0].Get("id")
	if !idVal.Equal(id("a")) {
		t.Errorf("id = %v, want a", idVal)
	}
}

// Scenario 2b: PatternGroup([A]) yields the same multiset as A.Match(S).
func TestPatternGroup_SingleChildIdentity(t *testing.T) {
	src := corpus()
	a := NewPattern(TriplePattern{Var("id"), Lit(id("name")), Var("name")}, src)
	group := NewPatternGroup(a)

	direct := rdf.Collect(a.Match(rdf.Solution{}))
	grouped := rdf.Collect(group.Match(rdf.Solution{}))
	if len(direct) != len(grouped) {
		t.Fatalf("PatternGroup([A]) yielded %d, A yielded %d", len(grouped), len(direct))
	}
}

// Scenario 3: UNION of two patterns, no dedup, null-padding handled by
// the projection stage (here we just check raw solution shapes).
func TestUnionGroup_Scenario3(t *testing.T) {
	src := corpus()
	u := NewUnionGroup(
		NewPattern(TriplePattern{Var("id"), Lit(id("name")), Var("name")}, src),
		NewPattern(TriplePattern{Var("id"), Lit(id("weight")), Var("weight")}, src),
	)

	got := rdf.Collect(u.Match(rdf.Solution{}))
	if len(got) != 3 {
		t.Fatalf("got %d solutions, want 3", len(got))
	}
	// First two from the left branch (name), last one from the right (weight).
	if _, ok := got[0].Get("name"); !ok {
		t.Errorf("expected first result to bind name")
	}
	if _, ok := got[2].Get("weight"); !ok {
		t.Errorf("expected third result to bind weight")
	}
}

// Scenario 4: two chained OPTIONALs.
func TestOptionalGroup_Scenario4(t *testing.T) {
	src := corpus()
	base := NewPattern(TriplePattern{Var("id"), Lit(id("name")), Var("value")}, src)
	withWeight := NewPatternGroup(base,
		NewOptionalGroup(NewPattern(TriplePattern{Var("id"), Lit(id("weight")), Var("weight")}, src)))
	withSize := NewPatternGroup(withWeight,
		NewOptionalGroup(NewPattern(TriplePattern{Var("id"), Lit(id("size")), Var("size")}, src)))

	got := rdf.Collect(withSize.Match(rdf.Solution{}))
	if len(got) != 2 {
		t.Fatalf("got %d solutions, want 2", len(got))
	}

	for _, sol := range got {
		idVal, _ := sol.Get("id")
		if idVal.Equal(id("a")) {
			if w, ok := sol.Get("weight"); !ok || !w.Equal(rdf.String("weight-a")) {
				t.Errorf("a: expected weight bound to weight-a, got %v ok=%v", w, ok)
			}
			if _, ok := sol.Get("size"); ok {
				t.Errorf("a: expected size unbound")
			}
		}
		if idVal.Equal(id("b")) {
			if _, ok := sol.Get("weight"); ok {
				t.Errorf("b: expected weight unbound")
			}
			if sz, ok := sol.Get("size"); !ok || !sz.Equal(rdf.String("size-b")) {
				t.Errorf("b: expected size bound to size-b, got %v ok=%v", sz, ok)
			}
		}
	}
}

// OptionalGroup zero-match pass-through property.
func TestOptionalGroup_PassThroughOnNoMatch(t *testing.T) {
	src := corpus()
	opt := NewOptionalGroup(NewPattern(TriplePattern{Lit(id("a")), Lit(id("missing")), Var("v")}, src))

	in := rdf.Solution{"id": id("a")}
	got := rdf.Collect(opt.Match(in))
	if len(got) != 1 {
		t.Fatalf("got %d solutions, want 1", len(got))
	}
	if idVal, ok := got[0].Get("id"); !ok || !idVal.Equal(id("a")) {
		t.Errorf("expected pass-through solution to equal input, got %v", got[0])
	}
}

// Scenario 5: FILTER(?height > 99) / FILTER(?height > 100).
func TestFilter_Scenario5(t *testing.T) {
	src := corpus()
	base := NewPattern(TriplePattern{Var("id"), Lit(id("height")), Var("height")}, src)

	over99 := NewPatternGroup(base, NewFilter(BinaryExpression{
		Left: VariableExpression{Name: "height"}, Op: OpGT, Right: LiteralExpression{Value: rdf.Integer(99)},
	}))
	got := rdf.Collect(over99.Match(rdf.Solution{}))
	if len(got) != 1 {
		t.Fatalf("height > 99: got %d, want 1", len(got))
	}

	over100 := NewPatternGroup(base, NewFilter(BinaryExpression{
		Left: VariableExpression{Name: "height"}, Op: OpGT, Right: LiteralExpression{Value: rdf.Integer(100)},
	}))
	got = rdf.Collect(over100.Match(rdf.Solution{}))
	if len(got) != 0 {
		t.Fatalf("height > 100: got %d, want 0", len(got))
	}
}

// Filter swallows type mismatches instead of propagating an error.
func TestFilter_SwallowsTypeMismatch(t *testing.T) {
	f := NewFilter(BinaryExpression{
		Left: VariableExpression{Name: "missing"}, Op: OpGT, Right: LiteralExpression{Value: rdf.Integer(1)},
	})
	got := rdf.Collect(f.Match(rdf.Solution{}))
	if len(got) != 0 {
		t.Errorf("got %d solutions, want 0 (unbound operand should be swallowed)", len(got))
	}
}

func TestArithmeticExpression(t *testing.T) {
	expr := ArithmeticExpression{
		Left:  VariableExpression{Name: "a"},
		Op:    OpAdd,
		Right: ArithmeticExpression{Left: VariableExpression{Name: "b"}, Op: OpMul, Right: LiteralExpression{Value: rdf.Integer(2)}},
	}
	sol := rdf.Solution{"a": rdf.Integer(4), "b": rdf.Integer(3)}
	got, ok := expr.Resolve(sol)
	if !ok {
		t.Fatalf("Resolve() failed")
	}
	if f, _ := got.AsFloat64(); f != 10 {
		t.Errorf("4 + 3*2 = %v, want 10", f)
	}
}

func TestBinaryExpression_StringComparison(t *testing.T) {
	expr := BinaryExpression{
		Left: LiteralExpression{Value: rdf.String("apple")}, Op: OpLT, Right: LiteralExpression{Value: rdf.String("banana")},
	}
	ok, err := expr.Matches(rdf.Solution{})
	if err != nil || !ok {
		t.Errorf("Matches() = %v, %v; want true, nil", ok, err)
	}
}
