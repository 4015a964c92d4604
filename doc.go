// Package graphtrace records step-by-step traces of classic graph algorithms
// for visualization.
//
// Every engine runs over a small, read-only, undirected core.Graph with
// uint32 weights and returns its result together with a trace.Visualization:
// an ordered list of immutable snapshots (visited nodes, current node,
// committed edges, candidate edges and a human-readable explanation).
//
// Packages:
//
//	core/         — Graph, Edge, start-node validation and sentinel errors
//	frontier/     — generic min-priority frontier with insertion-order ties
//	trace/        — Step, Visualization, Recorder, NodeSet, Validate
//	dfs/          — depth-first traversal with backtracking steps
//	bfs/          — breadth-first traversal by depth level
//	dijkstra/     — shortest paths with saturating uint32 distances
//	prim_kruskal/ — Prim MST with trace, Kruskal reference
//	builder/      — graph constructors, named graphs, the 10-city fixture
//	export/       — JSON / YAML trace files and a styled console renderer
//	config/       — YAML settings and user-supplied graph files
//	runner/       — resolves a start node and feeds traces to sinks
//	cmd/graphtrace — command-line front end
//
// Quick start:
//
//	ng := builder.Cities()
//	res, err := dijkstra.Dijkstra(ng.Graph, 0, dijkstra.WithNamer(ng.Names.Namer()))
//	if err != nil {
//		return err
//	}
//	for _, step := range res.Trace.Steps {
//		fmt.Println(step.Explanation)
//	}
//
// Engines never share state: each call owns its scratch data, so the same
// graph may be traced repeatedly or from several goroutines at once.
package graphtrace
