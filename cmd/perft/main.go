// Command perft runs the performance-test move-generation benchmark and
// prints node counts, optionally against a suite of positions loaded from
// a YAML file instead of a single FEN on the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rolandpj1968/oom-skaak-go/boardprinter"
	"github.com/rolandpj1968/oom-skaak-go/fen"
	"github.com/rolandpj1968/oom-skaak-go/lrucache"
	"github.com/rolandpj1968/oom-skaak-go/movegen"
	"github.com/rolandpj1968/oom-skaak-go/perft"
	"github.com/rolandpj1968/oom-skaak-go/square"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// config is the optional TOML configuration file format: anything it sets
// is overridden by an explicit flag of the same name.
type config struct {
	FEN        string `toml:"fen"`
	Depth      int    `toml:"depth"`
	Verbose    bool   `toml:"verbose"`
	CPUProfile string `toml:"cpuprofile"`
	MemProfile string `toml:"memprofile"`
}

// suiteEntry is one fixture in a YAML suite file.
type suiteEntry struct {
	Name     string `yaml:"name"`
	FEN      string `yaml:"fen"`
	Depth    int    `yaml:"depth"`
	Expected uint64 `yaml:"expected"`
}

func main() {
	cfgPath := flag.String("config", "", "Path to an optional TOML config file")
	fenStr := flag.String("fen", "", "FEN string of the position to test (default: starting position)")
	depth := flag.Int("depth", 2, "Performance test depth")
	verbose := flag.Bool("verbose", false, "Print per-root-move node counts")
	suitePath := flag.String("suite", "", "Path to a YAML file listing {name, fen, depth, expected} fixtures")
	cache := flag.Bool("cache", false, "Memoize depth->node-count results by FEN across a suite run")
	cpuprofile := flag.String("cpuprofile", "", "File to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "File to write a memory profile to")
	flag.Parse()

	if *cfgPath != "" {
		var cfg config
		if _, err := toml.DecodeFile(*cfgPath, &cfg); err != nil {
			log.Fatalf("reading config: %v", err)
		}
		if *fenStr == "" {
			*fenStr = cfg.FEN
		}
		if !flagWasSet("depth") && cfg.Depth != 0 {
			*depth = cfg.Depth
		}
		if !flagWasSet("verbose") && cfg.Verbose {
			*verbose = cfg.Verbose
		}
		if *cpuprofile == "" {
			*cpuprofile = cfg.CPUProfile
		}
		if *memprofile == "" {
			*memprofile = cfg.MemProfile
		}
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	var memo *lrucache.Cache[string, uint64]
	if *cache {
		memo = lrucache.New[string, uint64](1024)
	}

	if *suitePath != "" {
		runSuite(*suitePath, memo, *verbose)
		return
	}

	if *fenStr == "" {
		*fenStr = startingFEN
	}
	runOne("", *fenStr, *depth, memo, *verbose)
}

func runSuite(path string, memo *lrucache.Cache[string, uint64], verbose bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading suite file: %v", err)
	}
	var entries []suiteEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Fatalf("parsing suite file: %v", err)
	}

	failures := 0
	for _, e := range entries {
		nodes := runOne(e.Name, e.FEN, e.Depth, memo, verbose)
		if e.Expected != 0 && nodes != e.Expected {
			failures++
			log.Printf("FAIL %s: depth %d expected %d, got %d", e.Name, e.Depth, e.Expected, nodes)
		}
	}
	if failures > 0 {
		log.Fatalf("%d/%d fixtures failed", failures, len(entries))
	}
}

func runOne(name, fenStr string, depth int, memo *lrucache.Cache[string, uint64], verbose bool) uint64 {
	pos, err := fen.Parse(fenStr)
	if err != nil {
		log.Fatalf("parsing FEN %q: %v", fenStr, err)
	}

	memoKey := fmt.Sprintf("%s|%d", fenStr, depth)
	if memo != nil {
		if cached, ok := memo.Get(memoKey); ok {
			log.Printf("%s: %d nodes (cached)", label(name, fenStr), cached)
			return cached
		}
	}

	if verbose {
		log.Printf("Root position:\n%s", boardprinter.Board(pos.Board))
		if depth > 0 {
			ml := movegen.Generate(pos.Board, pos.ActiveColor)
			for _, m := range ml.Slice() {
				child := movegen.ApplyMove(pos.Board, pos.ActiveColor, m)
				sub := perft.Walk(child, square.Other(pos.ActiveColor), depth-1)
				log.Printf("  %s: %d", m.UCI(), sub.Nodes)
			}
		}
	}

	start := time.Now()
	stats := perft.Walk(pos.Board, pos.ActiveColor, depth)
	elapsed := time.Since(start)

	log.Printf("%s: depth=%d nodes=%d captures=%d eps=%d castles=%d promotions=%d checks=%d checkmates=%d (%s)",
		label(name, fenStr), depth, stats.Nodes, stats.Captures, stats.EnPassants,
		stats.Castles, stats.Promotions, stats.Checks, stats.Checkmates, elapsed)

	if memo != nil {
		memo.Put(memoKey, stats.Nodes)
	}
	return stats.Nodes
}

func label(name, fenStr string) string {
	if name != "" {
		return name
	}
	return fenStr
}

// flagWasSet reports whether a flag with the given name was set explicitly
// on the command line, so a config file value only fills in the gaps.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
