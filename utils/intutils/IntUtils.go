// Package intutils provides utilities for working with ints
package intutils

import "gonum.org/v1/gonum/spatial/r1"

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum int in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints {
		if val > max {
			max = val
		}
	}
	return max
}

// Clip clips an int to within a minimum and maximum value.
// If the int exceeds max, then the function returns the max
// If min exceeds the int, then the function returns the min
func Clip(value, min, max int) int {
	return Max(Min(value, max), min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value. The interval bounds are truncated to
// ints.
func ClipInterval(value int, interval r1.Interval) int {
	return Clip(value, int(interval.Min), int(interval.Max))
}

// InInterval returns whether value lies within the closed interval
func InInterval(value int, interval r1.Interval) bool {
	v := float64(value)
	return v >= interval.Min && v <= interval.Max
}
