package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that enum fields only use defined constants, not string literals",
	Run:  run,
}

// enumTypes are the named string types whose values must come from their declared constants.
var enumTypes = map[string]bool{
	"Resource":           true,
	"Verb":               true,
	"DocumentationState": true,
	"BlockKind":          true,
	"RunState":           true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				checkAssign(pass, node)
			case *ast.CompositeLit:
				checkCompositeLit(pass, node)
			}
			return true
		})
	}
	return nil, nil
}

func checkAssign(pass *analysis.Pass, assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		if i >= len(assign.Rhs) {
			continue
		}
		sel, ok := lhs.(*ast.SelectorExpr)
		if !ok {
			continue
		}
		if isEnum(pass.TypesInfo.TypeOf(sel)) && isStringLiteral(assign.Rhs[i]) {
			pass.Reportf(assign.Pos(),
				"enum field %s assigned string literal; use defined constant instead",
				sel.Sel.Name)
		}
	}
}

// checkCompositeLit covers keyed struct literals such as model.Capability{Verb: "get"}.
func checkCompositeLit(pass *analysis.Pass, lit *ast.CompositeLit) {
	t := pass.TypesInfo.TypeOf(lit)
	if t == nil {
		return
	}
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return
	}
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok || !isStringLiteral(kv.Value) {
			continue
		}
		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if field.Name() == key.Name && isEnum(field.Type()) {
				pass.Reportf(kv.Pos(),
					"enum field %s assigned string literal; use defined constant instead",
					key.Name)
			}
		}
	}
}

func isEnum(t types.Type) bool {
	if named, ok := t.(*types.Named); ok {
		return enumTypes[named.Obj().Name()]
	}
	return false
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
