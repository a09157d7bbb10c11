package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	dpe "github.com/saraedum/go-dpe"
)

// This is a cheap-and-nasty experiment for watching how fast intermediate
// magnitudes grow when you repeatedly square a value, which is roughly the
// worst case a lattice reduction pass can throw at its scalar type. Native
// float64 falls off a cliff into Inf after a handful of steps; the point of
// the exercise is to see how far the extended exponent keeps up and what the
// mantissa drift looks like along the way.
//
// It has been kept with the repository just in case it comes in handy, but I
// wouldn't recommend using it for anything serious.

const usage = `Exponent growth explorer

Usage: <start> <steps>`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	start, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		return err
	}
	steps, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}

	f := dpe.FloatFromFloat64(start)
	n := start

	for i := 0; i < steps; i++ {
		f = f.Mul(f)
		n = n * n

		m, exp := f.MantExp()
		fmt.Printf("step %d: dpe=%s (m=%.17g exp=%d) native=%g\n", i+1, f, m, exp, n)

		if math.IsInf(n, 0) && i > 0 {
			fmt.Println("native overflowed; dpe keeps going:")
		}
	}

	spew.Dump(f)

	if lg, err := f.Log(); err == nil {
		fmt.Printf("log: %s (log2 ≈ %.6g)\n", lg, lg.AsFloat64()/math.Ln2)
	}
	return nil
}
