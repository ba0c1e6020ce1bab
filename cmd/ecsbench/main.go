// Profiling:
// go build ./cmd/ecsbench
// go tool pprof -http=":8000" -nodefraction=0.001 ./ecsbench cpu.pprof
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/lzuwei/ecsreg/ecs"
)

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }

func main() {
	entities := flag.Int("entities", 50000, "number of entities to create per round")
	rounds := flag.Int("rounds", 20, "number of create/iterate/destroy rounds")
	mode := flag.String("profile", "cpu", "cpu, mem, or none")
	flag.Parse()

	switch *mode {
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		run(*rounds, *entities)
		p.Stop()
	case "mem":
		p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		run(*rounds, *entities)
		p.Stop()
	default:
		run(*rounds, *entities)
	}
}

func run(rounds, numEntities int) {
	r := ecs.NewRegistry()
	for round := 0; round < rounds; round++ {
		entities := make([]ecs.Entity, 0, numEntities)
		for i := 0; i < numEntities; i++ {
			e := r.Create()
			ecs.Emplace(r, e, position{X: float64(i), Y: float64(i)})
			if i%2 == 0 {
				ecs.Emplace(r, e, velocity{X: 1, Y: -1})
			}
			entities = append(entities, e)
		}

		var moved int
		for _, e := range ecs.View2[position, velocity](r) {
			pos := ecs.Get[position](r, e)
			vel := ecs.Get[velocity](r, e)
			pos.X += vel.X
			pos.Y += vel.Y
			moved++
		}

		for _, e := range entities {
			r.Destroy(e)
		}
		if round == rounds-1 {
			fmt.Printf("round %d: moved %d entities\n", round, moved)
		}
	}
}
