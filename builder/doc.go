// Package builder assembles graphs for the trace engines: deterministic
// synthetic topologies for tests and benchmarks, and named graphs (cities)
// with a bidirectional name↔index Resolver.
//
// Synthetic graphs:
//
//	g, err := builder.BuildGraph(6,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//	    builder.Cycle(6), builder.RandomSparse(0.4),
//	)
//
// Named graphs:
//
//	ng := builder.Cities()                 // the 10-city fixture
//	start, err := ng.Names.Index("Wuhan")  // core.ErrUnknownStartNode if absent
//
// Constructors never panic at runtime; option constructors panic on
// meaningless inputs (nil RNG, inverted ranges).
package builder
