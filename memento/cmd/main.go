package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-leo/collaboration-pattern/event"
	"github.com/go-leo/collaboration-pattern/memento"
)

// The editor changes its text three times, the history backs it up before each change and then
// rolls it back twice. The third change was never backed up, so the first undo lands on the
// second change and the second undo on the first one.
func main() {
	bus := event.NewBus()
	if err := memento.Narrate(bus, os.Stdout); err != nil {
		log.Fatal(err)
	}

	editor := memento.NewEditor("Texto-inicial-do-editor.", memento.Bus(bus))
	history := memento.NewHistory(editor, memento.Bus(bus))

	for i := 0; i < 3; i++ {
		if err := history.Backup(); err != nil {
			log.Fatal(err)
		}
		editor.DoSomething()
	}

	fmt.Println()
	history.Show()

	fmt.Println("\nClient: Now, let's rollback!")
	fmt.Println()
	if _, err := history.Undo(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nClient: Once more!")
	fmt.Println()
	if _, err := history.Undo(); err != nil {
		log.Fatal(err)
	}

	if err := bus.Close(context.Background()); err != nil {
		log.Fatal(err)
	}
}
