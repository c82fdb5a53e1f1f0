package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Looveh/lovisp/reader"
	"github.com/Looveh/lovisp/types"
)

func builtinReadString(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsStr() {
		return nil, types.NewLispError("read-string expects a single string argument")
	}
	return reader.ReadStr(*args[0].Str)
}

func builtinSlurp(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsStr() {
		return nil, types.NewLispError("slurp expects a single filename string")
	}
	contents, err := os.ReadFile(*args[0].Str)
	if err != nil {
		return nil, types.NewLispError("slurp: %v", err)
	}
	return types.NewStr(string(contents)), nil
}

// stdin is one buffered reader shared by every readline call, so input
// buffered past one line by a call is still there for the next. The REPL
// reads its own input through liner, not through this reader.
var stdin = bufio.NewReader(os.Stdin)

func builtinReadline(args []*types.Value) (*types.Value, error) {
	prompt := ""
	if len(args) == 1 {
		if !args[0].IsStr() {
			return nil, types.NewLispError("readline expects a string prompt")
		}
		prompt = *args[0].Str
	} else if len(args) != 0 {
		return nil, types.NewLispError("readline expects at most 1 argument")
	}

	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, types.NewLispError("readline: %v", err)
	}
	if err == io.EOF && line == "" {
		return types.Nil, nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return types.NewStr(line), nil
}
