// Package nosecretlog содержит анализатор, запрещающий поля zap с ключами,
// под которыми в лог могут попасть расшифрованный адрес или секрет.
package nosecretlog

import (
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const zapPath = "go.uber.org/zap"

// ForbiddenKeys - запрещённые ключи полей, без учёта регистра
var ForbiddenKeys = map[string]bool{
	"url":        true,
	"raw_url":    true,
	"secret":     true,
	"secret_key": true,
}

// Analyzer проверяет конструкторы полей zap
var Analyzer = &analysis.Analyzer{
	Name:     "nosecretlog",
	Doc:      "запрещает поля zap с ключами url и secret",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) == 0 {
			return
		}
		callee, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || callee.Pkg() == nil || callee.Pkg().Path() != zapPath {
			return
		}
		// Конструкторы полей - функции пакета, первый параметр которых - ключ
		sig := callee.Type().(*types.Signature)
		if sig.Recv() != nil || sig.Params().Len() == 0 {
			return
		}
		if basic, ok := sig.Params().At(0).Type().(*types.Basic); !ok || basic.Kind() != types.String {
			return
		}

		tv, ok := pass.TypesInfo.Types[call.Args[0]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return
		}
		key := constant.StringVal(tv.Value)
		if ForbiddenKeys[strings.ToLower(key)] {
			pass.Reportf(call.Args[0].Pos(), "zap field %q may expose a decrypted endpoint or secret", key)
		}
	})

	return nil, nil
}
