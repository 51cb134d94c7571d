package parser

import (
	"reflect"
	"runtime"
	"strings"
)

// ComponentParserNames lists the dispatcher's parsers by function name, in
// the order they are tried.
func ComponentParserNames() []string {
	names := make([]string, 0, len(componentParsers))
	for _, p := range componentParsers {
		full := runtime.FuncForPC(reflect.ValueOf(p).Pointer()).Name()
		names = append(names, full[strings.LastIndex(full, ".")+1:])
	}
	return names
}
