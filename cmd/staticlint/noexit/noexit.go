// Package noexit содержит анализатор, который запрещает завершать процесс
// из библиотечного кода: os.Exit, log.Fatal* и Fatal у zap-логгера допустимы
// только в пакете main. Остальные пакеты должны возвращать ошибку.
package noexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer запрещает завершение процесса вне пакета main.
var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает os.Exit, log.Fatal и zap Fatal вне пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

const zapPkg = "go.uber.org/zap"

// forbidden сообщает, завершает ли функция процесс.
func forbidden(fn *types.Func) bool {
	if fn.Pkg() == nil {
		return false
	}
	name := fn.Name()
	switch fn.Pkg().Path() {
	case "os":
		return name == "Exit"
	case "log":
		return strings.HasPrefix(name, "Fatal")
	case zapPkg:
		sig, ok := fn.Type().(*types.Signature)
		return ok && sig.Recv() != nil && (name == "Fatal" || name == "Fatalf" || name == "Fatalw")
	}
	return false
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() == "main" || strings.HasSuffix(pass.Pkg.Path(), ".test") {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}
		fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok || !forbidden(fn) {
			return
		}
		pass.Reportf(call.Pos(), "вызов %s завершает процесс; верните ошибку вызывающему", fn.FullName())
	})
	return nil, nil
}
