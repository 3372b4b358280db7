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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf().
// The pattern is retained and is used to identify the error later:
//
//	e := curated.Errorf(bus.OutOfRange, address)
//
//	if curated.Is(e, bus.OutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain.
//
//	e := curated.Errorf(snapshot.InvalidType, "ram", "noise")
//	f := curated.Errorf("restore: %v", e)
//
//	curated.Has(f, snapshot.InvalidType) // true
//	curated.Is(f, snapshot.InvalidType)  // false
//
// The Error() implementation normalises the chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". Wrapping an
// error with the same prefix twice does not repeat the prefix:
//
//	memory: memory: address 0xff6c accepted by ...
//
// is printed as
//
//	memory: address 0xff6c accepted by ...
//
// Sentinal patterns should be declared as exported string constants in the
// package that raises them.
package curated
