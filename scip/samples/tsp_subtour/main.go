// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The tsp_subtour command solves a symmetric traveling salesman problem with
// lazily added subtour elimination constraints.
package main

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/mipforge/goscip/scip/go/scip"
)

type city struct {
	name string
	x, y float64
}

type edge struct {
	i, j int
	x    *scip.Variable
}

type subtourElimination struct {
	n     int
	edges []edge
	added int
}

func (s *subtourElimination) tours(val func(*scip.Variable) float64) [][]int {
	next := make([][]int, s.n)
	for _, e := range s.edges {
		if val(e.x) > 0.5 {
			next[e.i] = append(next[e.i], e.j)
			next[e.j] = append(next[e.j], e.i)
		}
	}
	seen := make([]bool, s.n)
	var tours [][]int
	for start := 0; start < s.n; start++ {
		if seen[start] {
			continue
		}
		var tour []int
		for u := start; !seen[u]; {
			seen[u] = true
			tour = append(tour, u)
			for _, w := range next[u] {
				if !seen[w] {
					u = w
					break
				}
			}
		}
		tours = append(tours, tour)
	}
	return tours
}

func (s *subtourElimination) Check(m *scip.SolvingModel, sol *scip.Solution) bool {
	return len(s.tours(sol.Val)) == 1
}

func (s *subtourElimination) Enforce(m *scip.SolvingModel) scip.ConshdlrResult {
	tours := s.tours(m.CurrentVal)
	if len(tours) == 1 {
		return scip.ConshdlrFeasible
	}
	for _, tour := range tours {
		in := make(map[int]bool, len(tour))
		for _, u := range tour {
			in[u] = true
		}
		var vars []*scip.Variable
		var coefs []float64
		for _, e := range s.edges {
			if in[e.i] && in[e.j] {
				vars = append(vars, e.x)
				coefs = append(coefs, 1)
			}
		}
		m.AddCons(vars, coefs, 0, float64(len(tour)-1), fmt.Sprintf("subtour_%d", s.added))
		s.added++
	}
	log.V(1).Infof("eliminated %d subtours", len(tours))
	return scip.ConshdlrConsAdded
}

type incumbentLogger struct{}

func (incumbentLogger) EventMask() scip.EventMask {
	return scip.EventBestSolFound
}

func (incumbentLogger) Execute(m *scip.SolvingModel, ev *scip.Event) {
	if sol := ev.Sol(); sol != nil {
		log.Infof("new incumbent of length %.3f", sol.ObjVal())
	}
}

func tspSubtour() error {
	cities := []city{
		{"A", 0, 0}, {"B", 1, 0}, {"C", 0, 1},
		{"D", 10, 0}, {"E", 11, 0}, {"F", 10, 1},
		{"G", 5, 8}, {"H", 6, 9},
	}
	m := scip.New(scip.WithOutput(false)).IncludeDefaultPlugins().CreateProblem("tsp")
	defer m.Close()
	if err := m.SetPresolving(scip.ParamOff); err != nil {
		return fmt.Errorf("failed to turn presolving off: %w", err)
	}

	s := &subtourElimination{n: len(cities)}
	incident := make([][]*scip.Variable, len(cities))
	for i := range cities {
		for j := i + 1; j < len(cities); j++ {
			dist := math.Hypot(cities[i].x-cities[j].x, cities[i].y-cities[j].y)
			x := m.AddVar(0, 1, dist, cities[i].name+cities[j].name, scip.Binary)
			s.edges = append(s.edges, edge{i, j, x})
			incident[i] = append(incident[i], x)
			incident[j] = append(incident[j], x)
		}
	}
	for i, vars := range incident {
		coefs := make([]float64, len(vars))
		for k := range coefs {
			coefs[k] = 1
		}
		m.AddCons(vars, coefs, 2, 2, "degree_"+cities[i].name)
	}
	m.IncludeConstraintHandler(scip.ConstraintHandlerConfig{
		Name:          "subtour",
		Desc:          "eliminates tours that skip cities",
		EnfoPriority:  -1,
		CheckPriority: -1,
	}, s)
	m.IncludeEventHandler(scip.EventHandlerConfig{Name: "incumbents"}, incumbentLogger{})

	solved := m.Solve()
	if solved.Status() != scip.StatusOptimal {
		fmt.Println("No optimal tour found.")
		return nil
	}
	tours := s.tours(solved.BestSol().Val)
	if len(tours) != 1 {
		return fmt.Errorf("best solution has %d subtours", len(tours))
	}
	fmt.Printf("Tour length: %.3f\n", solved.ObjVal())
	for _, u := range tours[0] {
		fmt.Printf("%s -> ", cities[u].name)
	}
	fmt.Println(cities[tours[0][0]].name)
	fmt.Printf("Subtour constraints added: %d\n", s.added)
	return nil
}

func main() {
	if err := tspSubtour(); err != nil {
		log.Exitf("tspSubtour returned with error: %v", err)
	}
}
