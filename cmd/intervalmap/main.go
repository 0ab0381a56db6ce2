package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	app "github.com/akmistry/intervalmap/internal/app/intervalmap"
	"github.com/akmistry/intervalmap/internal/densemap"
	"github.com/akmistry/intervalmap/internal/intervalmap"
)

var (
	baseFlag    = flag.String("base", "B", "Base value for keys before the first boundary")
	verboseFlag = flag.Bool("verbose", false, "Verbose logging")

	randomFlag = flag.Int("random", 0, "Run this many random assignments and cross-check each one")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 for time-based)")
	loFlag     = flag.Int("lo", -50, "Lowest key for random assignments")
	hiFlag     = flag.Int("hi", 50, "Highest key for random assignments")
	valuesFlag = flag.String("values", "A,B,C,D", "Comma separated values for random assignments")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m := intervalmap.NewOrdered[int](*baseFlag)

	if *randomFlag > 0 {
		if flag.NArg() != 0 {
			log.Print("Usage: intervalmap -random N [-seed S] [-lo L] [-hi H]")
			os.Exit(1)
		}
		if *hiFlag < *loFlag {
			log.Printf("Invalid key range [%d, %d]", *loFlag, *hiFlag)
			os.Exit(1)
		}

		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Random seed %d", seed)
		rng := rand.New(rand.NewSource(seed))
		values := strings.Split(*valuesFlag, ",")

		d := densemap.New(*loFlag, *hiFlag+1, *baseFlag)
		as := app.RandomAssignments(rng, *randomFlag, *loFlag, *hiFlag+1, values)
		if err := app.Apply(m, d, as); err != nil {
			log.Printf("Cross-check failed: %v", err)
			fmt.Print(m)
			os.Exit(1)
		}
		log.Printf("%d assignments OK, %d boundaries, %d keys assigned",
			len(as), m.Len(), d.AssignedCount())
		fmt.Print(m)
		return
	}

	as := app.DemoAssignments
	if flag.NArg() > 0 {
		var err error
		as, err = app.ParseAssignments(flag.Args())
		if err != nil {
			log.Printf("Invalid assignment: %v", err)
			log.Print("Usage: intervalmap [BEGIN:END=VALUE ...]")
			os.Exit(1)
		}
	}
	if err := app.Apply(m, nil, as); err != nil {
		log.Fatal(err)
	}
	fmt.Print(m)
}
