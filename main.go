package main

// implements the minilisp repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"minilisp/eval"
)

var VERSION string
var LOGO = `
 (car '(minilisp))  | version: $VERSION
                    | 'q' quits, ':reset' clears the session
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func main() {
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New("> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ctx := eval.NewContext()
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "q":
			return
		case ":reset":
			ctx.Reset()
			continue
		}
		rv, err := ctx.Evaluate(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			continue
		}
		fmt.Printf("=> %s\n", rv)
	}
}
