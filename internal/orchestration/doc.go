// Package orchestration drives one benchmark run: it generates the two input
// sequences, times every summation strategy on them, checks that the
// strategies agree and hands the outcome to a presenter. It stays decoupled
// from presentation through the PhaseReporter and ResultPresenter interfaces.
package orchestration
