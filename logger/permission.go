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

package logger

// Permission is implemented by anything that makes a log request. Log
// requests from a Permission that returns false from AllowLogging() are
// dropped. The environment.Environment type is the usual implementation.
type Permission interface {
	AllowLogging() bool
}

// fixed is a Permission that does not depend on the requester.
type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow is the Permission for log requests that do not come from an
// emulation, for example from a test.
var Allow Permission = fixed(true)

// Deny is the Permission for log requests that should never be logged.
var Deny Permission = fixed(false)

// allowed returns the decision of the Permission. A nil Permission is treated
// as Allow.
func allowed(perm Permission) bool {
	return perm == nil || perm.AllowLogging()
}
