// quantile reads newline-separated probabilities from stdin and
// prints the corresponding quantiles of a chosen distribution, one
// per line. With -sf it inverts the survival function instead of the
// CDF, which matters for probabilities deep in the upper tail.
//
// For example,
//
//	echo 0.975 | quantile -dist t -v 10
//
// prints the critical value of the two-sided t-test at the 0.05
// level with 10 degrees of freedom.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/probmath/go-distmath/dist"
)

var (
	distName = flag.String("dist", "normal", "distribution: normal, lognormal, exp, uniform, triangle, t, binomial")
	sf       = flag.Bool("sf", false, "invert the survival function instead of the CDF")

	mu    = flag.Float64("mu", 0, "mean of normal, log-mean of lognormal")
	sigma = flag.Float64("sigma", 1, "standard deviation of normal, log-standard-deviation of lognormal")
	rate  = flag.Float64("rate", 1, "rate of exp")
	lower = flag.Float64("min", 0, "lower bound of uniform and triangle")
	upper = flag.Float64("max", 1, "upper bound of uniform and triangle")
	mode  = flag.Float64("mode", 0.5, "mode of triangle")
	v     = flag.Float64("v", 1, "degrees of freedom of t")
	n     = flag.Int("n", 10, "number of trials of binomial")
	p     = flag.Float64("p", 0.5, "success probability of binomial")
)

func main() {
	flag.Parse()

	d := pickDist()
	inv := dist.InvCDF(d)
	if *sf {
		inv = dist.InvSF(d)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		l := scanner.Text()
		prob, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !(prob >= 0 && prob <= 1) {
			fmt.Fprintf(os.Stderr, "probability %v out of range [0, 1]\n", l)
			os.Exit(1)
		}

		fmt.Printf("%g\n", inv(prob))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func pickDist() dist.DistCommon {
	switch *distName {
	case "normal":
		return dist.Normal{Mu: *mu, Sigma: *sigma}
	case "lognormal":
		return dist.LogNormal{Mu: *mu, Sigma: *sigma}
	case "exp":
		return dist.Exponential{Rate: *rate}
	case "uniform":
		return dist.Uniform{Min: *lower, Max: *upper}
	case "triangle":
		return dist.Triangular{Min: *lower, Mode: *mode, Max: *upper}
	case "t":
		return dist.TDist{V: *v}
	case "binomial":
		return dist.Binomial{N: *n, P: *p}
	}
	fmt.Fprintf(os.Stderr, "unknown distribution %q\n", *distName)
	os.Exit(2)
	return nil
}
