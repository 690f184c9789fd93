// Package main запускает multichecker проекта.
//
// Состав:
//   - анализаторы go/analysis/passes, которые ловят типичные ошибки HTTP и
//     работы с контекстом (httpresponse, lostcancel, errorsas и др.);
//   - все SA-анализаторы staticcheck;
//   - S1000, S1002 из simple и U1000 (unused);
//   - bodyclose;
//   - noexit: os.Exit и Fatal допустимы только в пакете main.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/monuments/cmd/staticlint/noexit"
)

// simpleChecks перечисляет выбранные проверки из набора simple.
var simpleChecks = []string{
	"S1000", // одиночный case в select
	"S1002", // сравнение bool с константой
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, a := range simple.Analyzers {
		if contains(simpleChecks, a.Analyzer.Name) {
			list = append(list, a.Analyzer)
		}
	}

	return append(list, unused.Analyzer.Analyzer, bodyclose.Analyzer, noexit.NewAnalyzer())
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func main() {
	multichecker.Main(analyzers()...)
}
