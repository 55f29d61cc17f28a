// Package chartio reads chart descriptions and writes style snapshots.
//
// # Chart Specs
//
// A chart spec is a JSON document describing one axes worth of data:
//
//	{
//	  "width": 640, "height": 480,
//	  "title": "Throughput", "xlabel": "workers", "ylabel": "req/s",
//	  "ylim": [0, 1200],
//	  "xticks": {"major": [1, 2, 4, 8, 16], "auto_minor": 0},
//	  "yticks": {"auto_minor": 4},
//	  "series": [
//	    {"label": "v1", "x": [1, 2, 4, 8, 16], "y": [110, 205, 390, 610, 720]},
//	    {"label": "v2", "x": [1, 2, 4, 8, 16], "y": [130, 250, 480, 860, 1100], "dash": [4, 2]}
//	  ]
//	}
//
// [Read] decodes and validates a spec; [Spec.Build] turns it into a
// [figure.Figure] whose current axes holds the data.
//
// # Snapshots
//
// [Snapshot] captures every styled attribute of an axes (spines, tick
// parameters, tick labels, text, grids) in a JSON-friendly form. It is what
// the "json" output format and the inspect command emit.
//
// [figure.Figure]: github.com/mbforbes/beautyplot/pkg/figure.Figure
package chartio
