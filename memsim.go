// memsim is a virtual memory address translation simulator.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"translate a reference stream of virtual addresses"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	RefFile      string `arg:"" name:"reffile" type:"existingfile" help:"reference list, one decimal virtual address per line"`
	Frames       int    `arg:"" optional:"" name:"frames" default:"256" help:"physical frame count (1-256)"`
	Algorithm    string `arg:"" optional:"" name:"pra" default:"FIFO" enum:"FIFO,LRU,OPT" help:"page replacement algorithm"`
	BackingStore string `name:"backing-store" default:"BACKING_STORE.bin" help:"path to backing store image"`
	Debug        bool   `name:"debug" help:"log state transitions to stderr"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	level := slog.LevelWarn
	if r.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sequence, err := readReferences(r.RefFile)
	if err != nil {
		return err
	}

	sim, err := newSimulator(r.Frames, r.Algorithm, mountBackingStore(r.BackingStore))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, addr := range sequence {
		a := sim.translate(addr, sequence, i)
		fmt.Fprintf(w, "%d,%d,%d,%s\n", addr, a.value, a.frame, a.dump)
	}
	printSummary(w, sim.summary())
	return nil
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "Page Faults = %d\n", s.pageFaults)
	fmt.Fprintf(w, "Page Fault Rate = %.2f%%\n", s.pageFaultRate)
	fmt.Fprintf(w, "TLB Hits = %d\n", s.tlbHits)
	fmt.Fprintf(w, "TLB Misses = %d\n", s.tlbMisses)
	fmt.Fprintf(w, "TLB Hit Rate = %.2f%%\n", s.tlbHitRate)
}
