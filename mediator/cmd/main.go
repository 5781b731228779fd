package main

import (
	"context"
	"log"
	"os"

	"github.com/go-leo/collaboration-pattern/event"
	"github.com/go-leo/collaboration-pattern/mediator"
)

// Three aircraft share one runway. They never talk to each other, the tower grants or denies
// every takeoff and landing. Each request completes before the next one is made, so none of
// them finds the runway busy.
func main() {
	ctx := context.Background()
	bus := event.NewBus()
	if err := mediator.Narrate(bus, os.Stdout); err != nil {
		log.Fatal(err)
	}

	tower := mediator.NewTower(mediator.Bus(bus))

	aircraft1 := mediator.NewAircraft("Flight A1", mediator.Bus(bus))
	aircraft2 := mediator.NewAircraft("Flight B2", mediator.Bus(bus))
	aircraft3 := mediator.NewAircraft("Flight C3", mediator.Bus(bus))

	for _, aircraft := range []*mediator.Aircraft{aircraft1, aircraft2, aircraft3} {
		if err := tower.Register(aircraft); err != nil {
			log.Fatal(err)
		}
	}

	steps := []func(context.Context) (mediator.Clearance, error){
		aircraft1.RequestTakeoff,
		aircraft2.RequestLanding,
		aircraft3.RequestTakeoff,
		aircraft2.RequestTakeoff,
	}
	for _, step := range steps {
		if _, err := step(ctx); err != nil {
			log.Fatal(err)
		}
	}

	if err := bus.Close(ctx); err != nil {
		log.Fatal(err)
	}
}
