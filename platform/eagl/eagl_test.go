// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && ios

package eagl

import "testing"

func TestForeignContextNotCached(t *testing.T) {
	owner, other := NewPlatform(), NewPlatform()
	c, err := owner.NewContext()
	if err != nil {
		t.Fatal(err)
	}
	defer owner.Release(c)
	if err := owner.SetCurrentContext(c); err != nil {
		t.Fatal(err)
	}
	if got := owner.CurrentContext(); got != c {
		t.Errorf("got current context %v, want %v", got, c)
	}
	for i := 0; i < 3; i++ {
		got, ok := other.CurrentContext().(*Context)
		if !ok || got.ref != c.ref || got.owned {
			t.Fatalf("got foreign context %+v", got)
		}
	}
	if n := len(other.contexts); n != 0 {
		t.Errorf("%d foreign contexts cached", n)
	}
}
