// Package query filters positioned nodes with boolean expressions
// evaluated against each node's route, key, value and source span.
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/foam-tools/foamedit/ir"
)

// Env is the expression environment for one node.
type Env struct {
	Route string `expr:"route"`
	Key   string `expr:"key"`
	Kind  string `expr:"kind"`
	Value any    `expr:"value"`
	Line  int    `expr:"line"`
	Depth int    `expr:"depth"`
}

// Compile builds a filter program. The expression must yield a bool.
func Compile(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(Env{}), expr.AsBool())
}

// Select returns the nodes under root, in declaration order, for
// which the program yields true. A nil program selects every node.
func Select(root *ir.Node, prog *vm.Program) ([]*ir.Node, error) {
	var out []*ir.Node
	var err error
	root.Walk(func(n *ir.Node) bool {
		if err != nil {
			return false
		}
		if n.Parent == nil {
			return true
		}
		if prog == nil {
			out = append(out, n)
			return true
		}
		res, rerr := expr.Run(prog, envFor(n))
		if rerr != nil {
			err = rerr
			return false
		}
		if ok, _ := res.(bool); ok {
			out = append(out, n)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func envFor(n *ir.Node) Env {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return Env{
		Route: n.Route(),
		Key:   n.Key,
		Kind:  n.Value.Type.String(),
		Value: n.Value.Interface(),
		Line:  n.LineStart + 1,
		Depth: depth,
	}
}
