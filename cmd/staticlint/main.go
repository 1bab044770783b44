// Package main содержит multichecker для статического анализа кода сервиса.
//
// Набор анализаторов:
//
// 1. Стандартные анализаторы из golang.org/x/tools/go/analysis/passes. Помимо
// общих проверок (nilness, shadow, printf, copylocks и др.) включены:
//   - httpresponse: использование ответа HTTP до проверки ошибки
//   - lostcancel: потерянная функция отмены context.WithTimeout
//   - errorsas: неверный второй аргумент errors.As
//   - structtag: синтаксис тегов json и validate
//   - unusedresult: отброшенный результат чистых функций
//
// 2. Все анализаторы класса SA из staticcheck.io.
//
// 3. Выборочно из других классов staticcheck.io (см. simpleChecks и styleChecks).
//
// 4. errcheck: необработанные ошибки.
//
// 5. Собственные анализаторы:
//   - noexit: прямой вызов os.Exit в функции main пакета main
//   - nosecretlog: поля zap с ключами url и secret
//
// Использование:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/kisielk/errcheck/errcheck"

	"github.com/ridwaanhall/SpaceX/cmd/staticlint/noexit"
	"github.com/ridwaanhall/SpaceX/cmd/staticlint/nosecretlog"
)

// simpleChecks - упрощения кода из класса S
var simpleChecks = map[string]bool{
	"S1000": true, // select с одним case
	"S1002": true, // сравнение bool с константой
	"S1005": true, // лишний пустой идентификатор
	"S1008": true, // if-return bool
}

// styleChecks - проверки стиля из класса ST. Комментарии в коде на русском,
// поэтому проверки формата doc-комментариев не включаются.
var styleChecks = map[string]bool{
	"ST1005": true, // текст ошибок с маленькой буквы без точки
	"ST1012": true, // имена переменных-ошибок с префиксом Err
	"ST1019": true, // повторный импорт пакета
}

// pick возвращает анализаторы staticcheck из набора names.
// Пустой набор означает все анализаторы.
func pick(from []*lint.Analyzer, names map[string]bool) []*analysis.Analyzer {
	out := make([]*analysis.Analyzer, 0, len(from))
	for _, a := range from {
		if len(names) == 0 || names[a.Analyzer.Name] {
			out = append(out, a.Analyzer)
		}
	}
	return out
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		nilness.Analyzer,
		shadow.Analyzer,
		unreachable.Analyzer,
		printf.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		copylock.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		errorsas.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
	}

	list = append(list, pick(staticcheck.Analyzers, nil)...)
	list = append(list, pick(simple.Analyzers, simpleChecks)...)
	list = append(list, pick(stylecheck.Analyzers, styleChecks)...)

	return append(list,
		errcheck.Analyzer,
		noexit.NoExitAnalyzer,
		nosecretlog.Analyzer,
	)
}

func main() {
	multichecker.Main(analyzers()...)
}
