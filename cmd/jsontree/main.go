// Command jsontree parses, formats, and validates JSON documents.
//
// Usage:
//
//	jsontree fmt [file]                    canonicalize a document
//	jsontree check [file]                  parse and report positioned errors
//	jsontree validate -schema def.yaml [file]
//	                                       validate against a YAML schema
//
// With no file argument each subcommand reads stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	jsontree "github.com/reoring/jsontree"
	"github.com/reoring/jsontree/i18n"
	"github.com/reoring/jsontree/schemadef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "fmt":
		cmdFmt(os.Args[2:])
	case "check":
		cmdCheck(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "jsontree: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  jsontree fmt [file]")
	fmt.Fprintln(os.Stderr, "  jsontree check [file]")
	fmt.Fprintln(os.Stderr, "  jsontree validate -schema def.yaml [file]")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jsontree: "+format+"\n", args...)
	os.Exit(1)
}

// readInput reads the first positional argument as a file, or stdin when no
// argument is given.
func readInput(args []string) (string, []byte) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		return args[0], data
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("read stdin: %v", err)
	}
	return "<stdin>", data
}

func cmdFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	fs.Parse(args)

	name, data := readInput(fs.Args())
	v, err := jsontree.Parse(data)
	if err != nil {
		reportParseError(name, err)
		os.Exit(1)
	}
	fmt.Println(v.Serialize())
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	dup := fs.Bool("dup", false, "also report duplicate object keys")
	fs.Parse(args)

	name, data := readInput(fs.Args())
	if _, err := jsontree.Parse(data); err != nil {
		reportParseError(name, err)
		os.Exit(1)
	}
	if *dup {
		iss, err := jsontree.DetectDuplicateKeys(data)
		if err != nil {
			reportParseError(name, err)
			os.Exit(1)
		}
		if len(iss) > 0 {
			reportIssues(name, iss)
			os.Exit(1)
		}
	}
	fmt.Printf("%s: ok\n", name)
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "YAML schema definition (required)")
	lang := fs.String("lang", "", "message language (en, ja)")
	fs.Parse(args)

	if *schemaPath == "" {
		fatalf("validate requires -schema")
	}
	if *lang != "" {
		i18n.SetLanguage(*lang)
	}

	def, err := os.ReadFile(*schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	schema, err := schemadef.Compile(def)
	if err != nil {
		fatalf("%v", err)
	}

	name, data := readInput(fs.Args())
	v, err := jsontree.Parse(data)
	if err != nil {
		reportParseError(name, err)
		os.Exit(1)
	}
	out, err := schema.Validate(v)
	if err != nil {
		if iss, ok := jsontree.AsIssues(err); ok {
			reportIssues(name, iss)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		}
		os.Exit(1)
	}
	fmt.Println(out.Serialize())
}

func reportParseError(name string, err error) {
	var pe *jsontree.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, pe.Line, pe.Col, pe.Msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
}

func reportIssues(name string, iss jsontree.Issues) {
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "$"
		}
		fmt.Fprintf(os.Stderr, "%s: %s: %s (%s)\n", name, path, it.Message, it.Code)
	}
}
