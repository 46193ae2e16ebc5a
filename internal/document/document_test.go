package document

import (
	"reflect"
	"sync"
	"testing"

	"github.com/dshills/notemark/internal/markup"
	"github.com/dshills/notemark/internal/span"
)

func TestNewDocument(t *testing.T) {
	d := New()

	if d.Text() != "" {
		t.Errorf("expected empty text, got %q", d.Text())
	}
	if d.Migrated() {
		t.Error("new document should be in markup mode")
	}
}

func TestToggleInlineUpdatesSelection(t *testing.T) {
	d := NewFromMarkup("Hello world")

	sel := d.ToggleInline(markup.NewRange(6, 11), markup.TagBold)

	if d.Text() != "Hello **world**" {
		t.Errorf("expected 'Hello **world**', got %q", d.Text())
	}
	if sel.Start != 6 || sel.End != 15 {
		t.Errorf("expected selection [6:15), got %v", sel)
	}

	// Feeding the returned selection back restores the original.
	sel = d.ToggleInline(sel, markup.TagBold)
	if d.Text() != "Hello world" {
		t.Errorf("expected original text, got %q", d.Text())
	}
	if sel.Start != 6 || sel.End != 11 {
		t.Errorf("expected selection [6:11), got %v", sel)
	}
}

func TestToggleBulletsUsesScheme(t *testing.T) {
	d := NewFromMarkup("one\ntwo", WithScheme(markup.Scheme{Bullet: "* "}))

	d.ToggleBullets(markup.NewRange(0, 7))
	if d.Text() != "* one\n* two" {
		t.Errorf("expected custom bullets, got %q", d.Text())
	}
}

func TestSpansDerivedInMarkupMode(t *testing.T) {
	d := NewFromMarkup("a **b** c")

	spans := d.Spans()
	if len(spans) != 1 || spans[0].Tag != markup.TagBold {
		t.Fatalf("expected derived bold span, got %v", spans)
	}
	// Deriving spans must not touch the text.
	if d.Text() != "a **b** c" {
		t.Errorf("text changed: %q", d.Text())
	}
}

func TestMigrate(t *testing.T) {
	d := NewFromMarkup("Hello **World** and *italic*")
	rev := d.RevisionID()

	d.Migrate()

	if !d.Migrated() {
		t.Fatal("expected span mode")
	}
	if d.Text() != "Hello World and italic" {
		t.Errorf("expected plain text, got %q", d.Text())
	}
	if d.RevisionID() == rev {
		t.Error("migration should produce a new revision")
	}

	want := []span.Span{
		{Tag: markup.TagBold, Start: 6, End: 11},
		{Tag: markup.TagItalic, Start: 16, End: 22},
	}
	if !reflect.DeepEqual(d.Spans(), want) {
		t.Errorf("expected %v, got %v", want, d.Spans())
	}

	// Second migration is a no-op.
	rev = d.RevisionID()
	d.Migrate()
	if d.RevisionID() != rev {
		t.Error("repeated migration should not change anything")
	}
}

func TestSpanMaintenance(t *testing.T) {
	d := NewFromPlain("Hello World", nil)

	d.AddSpan(markup.TagBold, 0, 5)
	d.AddSpan(markup.TagBold, 5, 8)

	want := []span.Span{{Tag: markup.TagBold, Start: 0, End: 8}}
	if !reflect.DeepEqual(d.Spans(), want) {
		t.Errorf("expected merged span, got %v", d.Spans())
	}

	d.ToggleSpan(markup.TagBold, 2, 4)
	if got := d.Spans(); got != nil {
		t.Errorf("toggle over existing span should remove it, got %v", got)
	}

	d.ToggleSpan(markup.TagItalic, 0, 5)
	if got := d.Spans(); len(got) != 1 || got[0].Tag != markup.TagItalic {
		t.Errorf("toggle on empty tag should add, got %v", got)
	}
}

func TestSpansReturnsCopy(t *testing.T) {
	d := NewFromPlain("text", []span.Span{{Tag: markup.TagBold, Start: 0, End: 4}})

	got := d.Spans()
	got[0].End = 999

	if d.Spans()[0].End != 4 {
		t.Error("mutating the returned slice leaked into the document")
	}
}

func TestSnapshotIsStable(t *testing.T) {
	d := NewFromMarkup("before")
	snap := d.Snapshot()

	d.SetText("after")

	if snap.Text() != "before" {
		t.Errorf("snapshot changed: %q", snap.Text())
	}
	if d.Text() != "after" {
		t.Errorf("document not updated: %q", d.Text())
	}
	if snap.RevisionID() == d.RevisionID() {
		t.Error("expected new revision after SetText")
	}
}

func TestConcurrentReaders(t *testing.T) {
	d := NewFromMarkup("**bold** #tag")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = d.Text()
				_ = d.Spans()
				_ = d.Markers()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.ToggleInline(markup.NewRange(0, 0), markup.TagItalic)
			}
		}()
	}
	wg.Wait()
}
