// Package polymetrics measures simple planar polygons: edge vectors and
// lengths, corner angles, vertex centroid, fan area and the "bordering"
// estimate of land reached from edges of a given border type.
//
// 🚀 What is inside?
//
//	polygon/            immutable Polygon and its pure queries (the library)
//	internal/survey/    YAML survey documents describing named polygons
//	internal/report/    evaluates a survey; text tables and HTML charts
//	internal/logger/    zap console logger used by the command
//	cmd/polymetrics/    CLI: report, chart, validate
//
// Quick ASCII example:
//
//	  v3───v2
//	  │     │     edge i runs from v[i] to v[i+1 mod 4]
//	  v0───v1     vertices wound anticlockwise
//
// With every edge tagged 0 and a reach of 0.5, Bordering(0, 0.5) on the
// unit square is 4: a 0.5 strip plus two quarter corner triangles per edge.
//
//	go install github.com/katalvlaran/polymetrics/cmd/polymetrics@latest
//	polymetrics report testdata/plots.yaml
package polymetrics
