// Package spacefill generates and measures space-filling curves on square
// grids of side 2^n.
//
// 🚀 What is spacefill?
//
//	A small, pure-Go toolkit that brings together:
//		• L-system grammars: Hilbert, Moore, Gosper and Dragon instruction strings
//		• Index codecs: Morton (Z-order), Hilbert and Moore, both directions
//		• Locality analysis: mean and median neighbor stretch per curve and order
//
// Under the hood, everything is organized in subpackages:
//
//	grid/           cells, coordinate conventions, Chebyshev neighbors
//	lsystem/        grammar engine, curve grammars, turtle walk
//	morton/         bit-interleaving codec
//	hilbert/        recursive quadrant codec over centered odd coordinates
//	moore/          closed Hilbert loop built from four sub-curves
//	locality/       stretch analyzer and concurrent sweeps
//	cmd/sfstretch/  command-line stretch tables
//
// Quick start:
//
//	avg, err := locality.AverageStretch(locality.Hilbert, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%.2f\n", avg)
package spacefill
