// Package fractal generates points of iterated-function-system fractals and
// of the Mandelbrot set.
//
// Sierpinski triangles, Sierpinski carpets, Vicsek fractals and pentagonal
// star fractals are produced by the chaos game (see [Game]). Koch snowflakes
// are produced by deterministic recursion (see [KochSnowflake]), and the
// Mandelbrot set is sampled by escape-time iteration (see [EscapeFactor] and
// [Grid]).
//
// All generators are pure functions of their arguments. Randomness is always
// drawn from an explicitly passed *rand.Rand, so that runs can be reproduced
// by reusing a seed. Colouring lives in the gradient package and drawing in
// the render package.
package fractal

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
