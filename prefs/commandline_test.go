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

package prefs_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/prefs"
	"github.com/gopherboy/gopherboy/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// get prefs value that doesn't exist after pushing a parially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")

	// values are used once only
	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "qux")
	ok, _ = prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineHardwareKeys(t *testing.T) {
	prefs.PushCommandLineStack("rewind.maxentries:: 20; hardware.gbc::true")

	ok, v := prefs.GetCommandLinePref("hardware.gbc")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")

	// the remaining key is unused and is returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "rewind.maxentries::20")

	// a value is applied to a preference of the correct type
	prefs.PushCommandLineStack("rewind.maxentries::20")
	ok, v = prefs.GetCommandLinePref("rewind.maxentries")
	test.ExpectSuccess(t, ok)
	var n prefs.Int
	test.ExpectSuccess(t, n.Set(v))
	test.ExpectEquality(t, n.Get().(int), 20)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// a value that is not a number is refused by an Int. anything other
	// than "true" sets a Bool to false
	prefs.PushCommandLineStack("rewind.maxentries::often; hardware.gbc::often")
	_, v = prefs.GetCommandLinePref("rewind.maxentries")
	test.ExpectFailure(t, n.Set(v))
	test.ExpectEquality(t, n.Get().(int), 20)
	_, v = prefs.GetCommandLinePref("hardware.gbc")
	var b prefs.Bool
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Set(v))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
