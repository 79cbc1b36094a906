package whenthen_test

import (
	"fmt"

	"github.com/creastat/whenthen"
	"github.com/creastat/whenthen/emitter"
)

func Example() {
	bus := emitter.New()
	root, err := whenthen.New(bus, nil)
	if err != nil {
		panic(err)
	}
	defer root.Destroy()

	bus.On("app:ready", func(...any) { fmt.Println("ready") }, nil)

	b, _ := root.When("config:loaded", "db:ready")
	b.Then(func() { fmt.Println("starting") }, "app:ready")

	bus.Trigger("db:ready")
	bus.Trigger("config:loaded")

	// Output:
	// starting
	// ready
}

func ExampleBarrier_Have() {
	local := emitter.New()
	remote := emitter.New()
	root, _ := whenthen.New(local, nil)

	remote.On("user:saved", func(args ...any) { fmt.Println("saved", args[0]) }, nil)

	b, _ := root.When("form:submitted")
	relay, _ := b.Have(remote)
	relay.Then("user:saved")

	local.Trigger("form:submitted", "alice")

	// Output:
	// saved alice
}

func ExampleChain_When() {
	bus := emitter.New()
	root, _ := whenthen.New(bus, nil)

	first, _ := root.When("a")
	chain, _ := first.Then(func() { fmt.Println("a done") })
	second, _ := chain.When("a", "b")
	second.Then(func() { fmt.Println("a and b done") })

	bus.Trigger("a")
	bus.Trigger("b")

	// Output:
	// a done
	// a and b done
}
