package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/peterh/liner"

	"corvus.dev/corvus"
)

const (
	historyFile = ".corvus_history"
	prompt      = "cv> "
)

func dumpTokensSource(source string, location *corvus.SourceLocation) error {
	lexer := corvus.NewLexer(source, location)
	for {
		token := lexer.NextToken()
		if token.Kind == corvus.TOKEN_EOF {
			return nil
		}
		where := ""
		if token.Location != nil {
			where = fmt.Sprintf(" @ %s:%d", token.Location.File, token.Location.Line)
		}
		fmt.Printf("%s %q%s\n", token.Kind, token.Literal, where)
	}
}

func parseSource(source string, location *corvus.SourceLocation) (corvus.AstProgram, error) {
	lexer := corvus.NewLexer(source, location)
	parser := corvus.NewParser(&lexer)
	program, parseErrors := parser.ParseProgram()
	if len(parseErrors) != 0 {
		for _, parseError := range parseErrors {
			reportError(parseError)
		}
		return corvus.AstProgram{}, fmt.Errorf("%d parse error(s)", len(parseErrors))
	}
	return program, nil
}

func dumpAstSource(source string, location *corvus.SourceLocation) error {
	program, err := parseSource(source, location)
	if err != nil {
		return err
	}
	fmt.Println(program.String())
	return nil
}

func evalSource(ctx *corvus.Context, source string, location *corvus.SourceLocation) error {
	program, err := parseSource(source, location)
	if err != nil {
		return err
	}
	_, err = program.Eval(ctx, ctx.BaseEnvironment)
	return err
}

func withFileSource(path string, f func(string, *corvus.SourceLocation) error) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return f(string(bytes), &corvus.SourceLocation{File: path, Line: 1})
}

func reportError(err error) {
	location := func() *corvus.SourceLocation {
		if parseError, ok := err.(corvus.ParseError); ok {
			return parseError.Location
		}
		if runtimeError, ok := err.(corvus.Error); ok {
			return runtimeError.Location
		}
		return nil
	}()
	if location != nil {
		fmt.Fprintf(os.Stderr, "[%s:%d] error: %v\n", location.File, location.Line, err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if history == "" {
			return
		}
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	// One context and base environment for the whole session, so let
	// bindings persist across inputs.
	ctx := corvus.NewContext()
	lineNumber := 1
	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		location := &corvus.SourceLocation{File: "<repl>", Line: lineNumber}
		lineNumber += 1

		lexer := corvus.NewLexer(input, location)
		parser := corvus.NewParser(&lexer)
		program, parseErrors := parser.ParseProgram()
		if len(parseErrors) != 0 {
			for _, parseError := range parseErrors {
				reportError(parseError)
			}
			continue
		}

		value, err := program.Eval(&ctx, ctx.BaseEnvironment)
		if err != nil {
			reportError(err)
			continue
		}
		fmt.Println(value.String())
	}
}

func usage(w io.Writer) {
	program := os.Args[0]
	fmt.Fprintf(w, `usage:
  %s [FILE]
  %s [-c|--command] COMMAND

options:
  -c, --command     Execute the provided command.
  --dump-tokens     Dump the lexed token stream to stdout.
  --dump-ast        Dump the parsed program to stdout.
  -h, --help        Display this help text and exit.

Run without a file or command to start an interactive session.
`, program, program)
}

func main() {
	reCommand := regexp.MustCompile(`^-+c(?:ommand)?(?:=(.*))?$`)
	reDumpTokens := regexp.MustCompile(`^-+dump-tokens$`)
	reDumpAst := regexp.MustCompile(`^-+dump-ast$`)
	reHelp := regexp.MustCompile(`^-+h(?:elp)?$`)

	verbatim := false
	var cmds *string
	var file *string
	dumpTokens := false
	dumpAst := false
	argi := 1
	for argi < len(os.Args) {
		arg := os.Args[argi]

		positional := func() {
			if cmds == nil && file == nil {
				file = &arg
				verbatim = true
			}
			argi += 1
		}

		if verbatim {
			positional()
			continue
		}

		// Remaining args are processed verbatim.
		if arg == "--" {
			verbatim = true
			argi += 1
			continue
		}

		// -c, -command
		if m := reCommand.FindStringSubmatch(arg); m != nil {
			// -c='1 + 2;'
			if m[1] != "" {
				cmds = &m[1]
				argi += 1
				continue
			}

			// -c '1 + 2;'
			if argi+1 < len(os.Args) {
				cmds = &os.Args[argi+1]
				argi += 2
				continue
			}

			fmt.Fprintf(os.Stderr, "error: expected command argument\n")
			usage(os.Stderr)
			os.Exit(1)
		}

		// -dump-tokens
		if reDumpTokens.MatchString(arg) {
			dumpTokens = true
			argi += 1
			continue
		}

		// -dump-ast
		if reDumpAst.MatchString(arg) {
			dumpAst = true
			argi += 1
			continue
		}

		// -h, -help
		if reHelp.MatchString(arg) {
			usage(os.Stdout)
			os.Exit(0)
		}

		if strings.HasPrefix(arg, "-") {
			fmt.Fprintf(os.Stderr, "error: unknown flag %s\n", arg)
			usage(os.Stderr)
			os.Exit(1)
		}

		positional()
	}

	var err error
	ctx := corvus.NewContext()
	switch {
	case cmds != nil && dumpTokens:
		err = dumpTokensSource(*cmds, &corvus.SourceLocation{File: "<command>", Line: 1})
	case cmds != nil && dumpAst:
		err = dumpAstSource(*cmds, &corvus.SourceLocation{File: "<command>", Line: 1})
	case cmds != nil:
		err = evalSource(&ctx, *cmds, &corvus.SourceLocation{File: "<command>", Line: 1})
	case file != nil && dumpTokens:
		err = withFileSource(*file, dumpTokensSource)
	case file != nil && dumpAst:
		err = withFileSource(*file, dumpAstSource)
	case file != nil:
		err = withFileSource(*file, func(source string, location *corvus.SourceLocation) error {
			return evalSource(&ctx, source, location)
		})
	case dumpTokens || dumpAst:
		fmt.Fprintf(os.Stderr, "error: requested a dump without a command or file path\n")
		os.Exit(1)
	default:
		err = repl()
	}

	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}
