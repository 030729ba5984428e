// Command linprog builds one of the bundled word problems and solves it
// with the chosen backend.
//
// Usage:
//
//	linprog -list
//	linprog -problem rice
//	linprog -problem knapsack -solver highs
//	linprog -problem furniture -lp
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"

	"github.com/whoisorioki/linprog"
	"github.com/whoisorioki/linprog/problems"
	"github.com/whoisorioki/linprog/solver/highs"
	"github.com/whoisorioki/linprog/solver/lpsolve"
	"github.com/whoisorioki/linprog/solver/simplex"
)

var (
	problemFlag = flag.String("problem", "rice", "problem to build, see -list")
	solverFlag  = flag.String("solver", "simplex", "backend: simplex, highs or lpsolve")
	lpFlag      = flag.Bool("lp", false, "print the model in LP format instead of solving")
	listFlag    = flag.Bool("list", false, "list the available problems and exit")
)

func main() {
	flag.Parse()

	if *listFlag {
		fmt.Println(strings.Join(problems.Names(), "\n"))
		return
	}

	build, ok := problems.Catalog[*problemFlag]
	if !ok {
		log.Exitf("unknown problem %q, available: %s", *problemFlag, strings.Join(problems.Names(), ", "))
	}
	m, err := build()
	if err != nil {
		log.Exitf("building problem %s: %v", *problemFlag, err)
	}

	if *lpFlag {
		if err := m.WriteLP(os.Stdout); err != nil {
			log.Exitf("writing LP format: %v", err)
		}
		return
	}

	sol, err := solve(m)
	if err != nil {
		log.Exitf("solving problem %s: %v", *problemFlag, err)
	}
	if err := sol.WriteTable(os.Stdout); err != nil {
		log.Exitf("printing solution: %v", err)
	}
}

func solve(m *linprog.Model) (*linprog.Solution, error) {
	switch *solverFlag {
	case "simplex":
		return simplex.Solve(m)
	case "highs":
		return highs.Solve(m)
	case "lpsolve":
		return lpsolve.Solve(m)
	default:
		log.Exitf("unknown solver %q, available: simplex, highs, lpsolve", *solverFlag)
		return nil, nil
	}
}
