package interp

import (
	"fmt"
	"strings"

	"github.com/Looveh/lovisp/printer"
	"github.com/Looveh/lovisp/types"
)

func corePrint() map[string]Builtin {
	return map[string]Builtin{
		"pr-str":  builtinPrStr,
		"str":     builtinStr,
		"prn":     builtinPrn,
		"println": builtinPrintln,
	}
}

func printJoined(args []*types.Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printer.Print(a, readable)
	}
	return strings.Join(parts, sep)
}

func builtinPrStr(args []*types.Value) (*types.Value, error) {
	return types.NewStr(printJoined(args, true, " ")), nil
}

func builtinStr(args []*types.Value) (*types.Value, error) {
	return types.NewStr(printJoined(args, false, "")), nil
}

func builtinPrn(args []*types.Value) (*types.Value, error) {
	fmt.Println(printJoined(args, true, " "))
	return types.Nil, nil
}

func builtinPrintln(args []*types.Value) (*types.Value, error) {
	fmt.Println(printJoined(args, false, " "))
	return types.Nil, nil
}
