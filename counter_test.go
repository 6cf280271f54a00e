package reveal

import (
	"strconv"
	"testing"
)

func TestCounterLandsExactlyOnTarget(t *testing.T) {
	el := NewElement("counter")
	el.Text = "0"

	c := newCounterAnim(el, 250, 1.5)
	r := ElementRenderer{}

	for i := 0; i < 16; i++ { // 16 * 0.1 = 1.6s > 1.5s
		c.update(0.1, r)
	}

	if el.Text != "250" {
		t.Errorf("Text = %q, want exactly \"250\"", el.Text)
	}
	if c.update(0.1, r) {
		t.Error("finished counter should report not running")
	}
}

func TestCounterIsMonotonic(t *testing.T) {
	el := NewElement("counter")
	r := &recordingRenderer{}

	c := newCounterAnim(el, 250, 1.5)
	for i := 0; i < 20; i++ {
		c.update(0.1, r)
	}

	prev := -1
	for _, text := range r.texts(el) {
		n, err := strconv.Atoi(text)
		if err != nil {
			t.Fatalf("non-numeric counter text %q", text)
		}
		if n < prev {
			t.Fatalf("counter went backwards: %d after %d", n, prev)
		}
		if n < 0 || n > 250 {
			t.Fatalf("counter out of range: %d", n)
		}
		prev = n
	}
	if prev != 250 {
		t.Errorf("final value %d, want 250", prev)
	}
}

func TestCounterShowsIntermediateValues(t *testing.T) {
	el := NewElement("counter")

	c := newCounterAnim(el, 250, 1.5)
	c.update(0.75, ElementRenderer{}) // halfway, linear

	n, err := strconv.Atoi(el.Text)
	if err != nil {
		t.Fatalf("non-numeric counter text %q", el.Text)
	}
	if n < 100 || n > 150 {
		t.Errorf("halfway value = %d, want ~125", n)
	}
}

func TestCounterStopsWhenElementDisposed(t *testing.T) {
	el := NewElement("counter")

	c := newCounterAnim(el, 100, 1.0)
	c.update(0.1, ElementRenderer{})

	el.Dispose()
	if c.update(0.1, ElementRenderer{}) {
		t.Error("counter on disposed element should stop")
	}
}

func TestCounterZeroTarget(t *testing.T) {
	el := NewElement("counter")

	c := newCounterAnim(el, 0, 1.5)
	for i := 0; i < 16; i++ {
		c.update(0.1, ElementRenderer{})
	}

	if el.Text != "0" {
		t.Errorf("Text = %q, want \"0\"", el.Text)
	}
}
