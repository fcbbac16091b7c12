// Command erltok tokenizes an Erlang source file and prints the resulting
// token stream. It is the trivial driver program described as an external
// collaborator: no parsing, no macro expansion, just file I/O around the
// tokenizer package.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/sile/erl-tokenize/tokenizer"
)

func main() {
	silent := getopt.BoolLong("silent", 's', "suppress per-token output")
	debug := getopt.BoolLong("debug", 'd', "print a pretty-printed struct dump instead of the plain format")
	stopOnError := getopt.BoolLong("stop-on-error", 0, "stop at the first lexing error instead of recovering and continuing")
	getopt.SetParameters("SOURCE-FILE")

	getopt.Parse()
	args := getopt.Args()
	if len(args) != 1 {
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "erltok: %s\n", err)
		os.Exit(1)
	}

	start := time.Now()
	count := 0
	hadError := false

	t := tokenizer.New(string(data))
	t.SetFilepath(args[0])

	for {
		tok, err := t.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			hadError = true
			fmt.Fprintf(os.Stderr, "erltok: %s\n", err)
			if *stopOnError || !t.ConsumeChar() {
				break
			}
			continue
		}

		count++
		if !*silent {
			if *debug {
				fmt.Println((&pretty.Config{IncludeUnexported: true}).Sprint(tok))
			} else {
				fmt.Printf("[%s] %q\n", tok.Pos(), tok.Text())
			}
		}
	}

	fmt.Printf("%d tokens in %s\n", count, time.Since(start))

	if hadError {
		os.Exit(1)
	}
}
