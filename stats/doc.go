// Package stats summarizes the final estimates of repeated Monte Carlo trials.
//
// Summarize reduces a set of values to the five-number summary a box plot needs
// (min, Q1, median, Q3, max), plus Tukey whiskers and outliers, the mean with a
// 95% confidence interval, and the mean absolute error against a target.
// SummarizeTiers applies it to every tier of a montecarlo.Results value.
//
// Order statistics come from github.com/aclements/go-moremath/stats.
package stats
