// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions test for simple
// equality of comparable types:
//
//	test.ExpectEquality(t, sweep.IsEnabled(), true)
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" and
// "failure" values. A success value is a true bool or a nil error. A failure
// value is a false bool or a non-nil error.
//
//	test.ExpectSuccess(t, ch.Restore(s))
//	test.ExpectFailure(t, ch.Restore(other))
//
// The Demand*() functions are the same as their Expect*() counterparts
// except that a failure stops the test immediately. They should be used
// when subsequent tests would be meaningless.
//
// All functions accept an optional list of tags. The tags are printed as
// a prefix to the failure message and are useful for identifying the
// failing iteration of a loop.
package test
