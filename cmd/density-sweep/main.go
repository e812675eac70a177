package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mad-life/pkg/sims/life"

	"github.com/cheggaaa/pb/v3"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type job struct {
	density float64
	seed    int64
}

type summary struct {
	density  float64
	runs     int
	extinct  int
	settled  int
	meanPop  float64
	meanPeak float64
	meanGens float64
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 32, "boards per density")
	densityList := flag.String("densities", "0.1,0.2,0.3,0.4,0.5,0.6", "comma separated seeding densities")
	var overrides kvList
	flag.Var(&overrides, "set", "grid override in key=value form (rows, cols, seed); repeatable")
	flag.Parse()

	kv := map[string]string{}
	for _, item := range overrides {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			continue
		}
		kv[parts[0]] = parts[1]
	}
	base := life.FromMap(kv)

	densities, err := parseDensities(*densityList)
	if err != nil {
		log.Fatalf("densities: %v", err)
	}

	var jobsList []job
	for _, d := range densities {
		for i := 0; i < *seeds; i++ {
			jobsList = append(jobsList, job{density: d, seed: base.Seed + int64(i)})
		}
	}

	fmt.Printf("Surveying %d boards of %dx%d (%d workers, %d generations)\n", len(jobsList), base.Rows, base.Cols, *workers, *steps)

	jobs := make(chan job)
	results := make(chan life.SurveyResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Density = j.density
				cfg.Seed = j.seed
				res, err := life.Survey(cfg, *steps)
				if err != nil {
					log.Printf("survey density=%.2f seed=%d: %v", j.density, j.seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	bar := pb.StartNew(len(jobsList))
	var all []life.SurveyResult
	for res := range results {
		all = append(all, res)
		bar.Increment()
	}
	bar.Finish()
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	fmt.Printf("%8s %5s %8s %8s %10s %10s %10s\n", "density", "runs", "extinct", "settled", "mean pop", "mean peak", "mean gens")
	for _, s := range summarize(all) {
		fmt.Printf("%8.2f %5d %8d %8d %10.1f %10.1f %10.1f\n",
			s.density, s.runs, s.extinct, s.settled, s.meanPop, s.meanPeak, s.meanGens)
	}
}

func parseDensities(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("density %v outside [0,1]", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no densities given")
	}
	return out, nil
}

func summarize(all []life.SurveyResult) []summary {
	byDensity := map[float64]*summary{}
	for _, res := range all {
		s, ok := byDensity[res.Density]
		if !ok {
			s = &summary{density: res.Density}
			byDensity[res.Density] = s
		}
		s.runs++
		if res.Extinct() {
			s.extinct++
		}
		if res.Settled() {
			s.settled++
		}
		s.meanPop += float64(res.Final)
		s.meanPeak += float64(res.Peak)
		s.meanGens += float64(res.Generations)
	}

	out := make([]summary, 0, len(byDensity))
	for _, s := range byDensity {
		n := float64(s.runs)
		s.meanPop /= n
		s.meanPeak /= n
		s.meanGens /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].density < out[j].density })
	return out
}
