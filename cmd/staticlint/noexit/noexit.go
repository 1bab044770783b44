// Package noexit содержит анализатор, запрещающий прямой вызов os.Exit в функции main пакета main.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// NoExitAnalyzer проверяет отсутствие прямых вызовов os.Exit в функции main.
// Завершение процесса должно проходить через логгер или возврат ошибки,
// чтобы отложенные вызовы успели выполниться.
var NoExitAnalyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает прямой вызов os.Exit в функции main пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
			return
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			// Замыкания внутри main выполняются отдельно
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if callee, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func); ok &&
				callee.Pkg() != nil && callee.Pkg().Path() == "os" && callee.Name() == "Exit" {
				pass.Reportf(call.Pos(), "прямой вызов os.Exit в функции main запрещен")
			}
			return true
		})
	})

	return nil, nil
}
