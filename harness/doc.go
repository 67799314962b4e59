// Package harness checks and times gauss reducers.
//
// Validate solves a built-in Scenario on a private copy and prints the
// solution, flagging the first value that misses the expected one by more
// than the tolerance. Benchmark times {Reduce + BackSubstitute} over R
// deep copies of an input system and reports the best run.
//
// Both write plain text to a caller-supplied io.Writer and return a
// structured result (Verdict, Report) for programmatic use.
package harness
