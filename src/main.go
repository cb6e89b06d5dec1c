package main

import (
	"fmt"
	"os"
	"sync"

	"koopacc/src/backend"
	"koopacc/src/frontend"
	"koopacc/src/ir"
	"koopacc/src/ir/koopa"
	"koopacc/src/util"
	"koopacc/src/util/diag"
)

// run drives the compiler stages for opt, writing through the Writer
// currently bound by util.ListenWrite. It returns a process exit code.
func run(opt util.Options) int {
	src, err := util.ReadSource(opt.Src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read source code: %s\n", err)
		return 1
	}

	cu, err := frontend.Parse(src)
	if err != nil {
		diag.Report(diag.NewError(diag.ParseFailure, 0, 0, "%s", err))
		return 1
	}

	irText, diags := ir.Lower(cu)
	fatal := false
	for _, d := range diags {
		diag.Report(d)
		if !d.Kind.Recoverable() {
			fatal = true
		}
	}
	if fatal {
		return 1
	}

	if opt.Mode == util.Koopa {
		wr := util.NewWriter()
		wr.WriteString(irText)
		wr.Flush()
		wr.Close()
		return 0
	}

	prog, err := koopa.Parse(irText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "internal error reading lowered IR: %s\n", err)
		return 1
	}
	backend.GenerateAssembler(prog)
	return 0
}

func main() {
	opt, err := util.ParseArgs()
	if err != nil {
		fmt.Printf("command line argument error: %s\n", err)
		os.Exit(1)
	}

	wg := sync.WaitGroup{}
	if len(opt.Out) > 0 {
		f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer func(f *os.File) {
			if err := f.Close(); err != nil {
				fmt.Println(err)
			}
		}(f)
		util.ListenWrite(f, &wg)
	} else {
		util.ListenWrite(nil, &wg)
	}
	defer util.Close()

	code := run(opt)

	wg.Wait()
	if code != 0 {
		os.Exit(code)
	}
}
