package catalog

import (
	"github.com/neolcr/patterns/internal/ddd"
	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/patterns/behavioral"
	"github.com/neolcr/patterns/internal/patterns/structural"
	"github.com/neolcr/patterns/internal/solid"
	"github.com/neolcr/patterns/internal/theory"
)

// Default builds the full catalogue, feeding tunables from cfg into the demos that take them.
func Default(cfg domain.Config) *Registry {
	threads := theory.ThreadsConfig{
		Platform:    cfg.Threads.Platform,
		Lightweight: cfg.Threads.Lightweight,
		Executor:    cfg.Threads.Executor,
		Sleep:       cfg.Threads.Sleep,
	}

	return NewRegistry(
		// behavioral
		demo("chain-of-responsibility", domain.CategoryBehavioral, "Chain of Responsibility",
			"Even and odd handlers pass numbers along a chain.", behavioral.ChainOfResponsibilityDemo),
		demo("command", domain.CategoryBehavioral, "Command",
			"An invoker executes greeting commands and keeps a history.", behavioral.CommandDemo),
		demo("iterator", domain.CategoryBehavioral, "Iterator",
			"Explicit HasNext/Next iteration next to a range-over-func sequence.", behavioral.IteratorDemo),
		demo("mediator", domain.CategoryBehavioral, "Mediator",
			"Two chat users talk only through a mediator.", behavioral.MediatorDemo),

		// structural
		demo("adapter", domain.CategoryStructural, "Adapter",
			"A new printer interface served by a legacy printer.", structural.AdapterDemo),
		demo("bridge", domain.CategoryStructural, "Bridge",
			"Shapes and renderers vary independently.", structural.BridgeDemo),
		demo("composite", domain.CategoryStructural, "Composite",
			"Files and directories displayed as one tree.", structural.CompositeDemo),
		demo("decorator", domain.CategoryStructural, "Decorator",
			"Bold and italic wrappers around plain text.", structural.DecoratorDemo),
		demo("facade", domain.CategoryStructural, "Facade",
			"A computer facade hides CPU, memory and disk.", structural.FacadeDemo),
		demo("flyweight", domain.CategoryStructural, "Flyweight",
			"A font factory shares font instances by name.", structural.FlyweightDemo),
		demo("proxy", domain.CategoryStructural, "Proxy",
			"A lazy virtual proxy and a rate-limited protection proxy.",
			structural.ProxyDemo(cfg.Proxy.RPS, cfg.Proxy.Burst)),

		// solid
		demo("single-responsibility", domain.CategorySOLID, "Single Responsibility",
			"Invoice storage and printing live in separate types.", solid.SingleResponsibilityDemo),
		demo("open-closed", domain.CategorySOLID, "Open/Closed",
			"Area calculation stays closed while shapes are added.", solid.OpenClosedDemo),
		demo("liskov-substitution", domain.CategorySOLID, "Liskov Substitution",
			"A penguin that cannot fly breaks the Bird contract.", solid.LiskovSubstitutionDemo),
		demo("interface-segregation", domain.CategorySOLID, "Interface Segregation",
			"Printers implement only the capabilities they have.", solid.InterfaceSegregationDemo),
		demo("dependency-inversion", domain.CategorySOLID, "Dependency Inversion",
			"Notifications depend on a message service abstraction.", solid.DependencyInversionDemo),
		demo("no-dependency-inversion", domain.CategorySOLID, "Without Dependency Inversion",
			"A notification hard-wired to email.", solid.NoDependencyInversionDemo),

		// hexagonal
		demo("hexagonal-account", domain.CategoryHexagonal, "Hexagonal account",
			"Create and deposit through use cases backed by an in-memory adapter.", HexagonalAccountDemo),

		// ddd
		demo("ddd", domain.CategoryDDD, "Domain-Driven Design",
			"Entities, value objects, events and a repository.", ddd.DDDDemo),

		// theory
		demo("generics", domain.CategoryTheory, "Generics",
			"Type parameters, constraints and generic helpers.", theory.GenericsDemo),
		demo("interfaces", domain.CategoryTheory, "Interfaces",
			"Small interfaces, embedding and default behaviour.", theory.InterfacesDemo),
		demo("records", domain.CategoryTheory, "Records",
			"Immutable value carriers compared with pointer identity.", theory.RecordsDemo),
		demo("sealed", domain.CategoryTheory, "Sealed hierarchies",
			"Interfaces closed by an unexported method.", theory.SealedDemo),
		demo("threads", domain.CategoryTheory, "Threads",
			"OS-thread goroutines, plain goroutines and a bounded executor.", theory.ThreadsDemo(threads)),
	)
}

func demo(name string, cat domain.Category, title, summary string, run domain.DemoFunc) domain.Demo {
	return domain.Demo{Name: name, Category: cat, Title: title, Summary: summary, Run: run}
}
