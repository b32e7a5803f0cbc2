// Package analytics holds the pure learning-analytics computations: activity
// streaks, score improvement between attempts and weak-topic ranking. Callers
// load history from their stores and pass plain values in; nothing here does I/O.
package analytics
