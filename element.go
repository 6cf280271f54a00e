package reveal

// elementIDCounter is a plain counter (no atomic — reveal is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the page building block: a flat struct carrying identity,
// page geometry, and the render state the effects mutate. A single struct
// is used for all element kinds; behavior is selected by class and
// attribute matching, not by type.
type Element struct {
	// Identity
	ID   string // fragment identifier for anchor targets, may be empty
	Name string

	// Matching
	Classes []string
	attrs   map[string]string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Page geometry. X and Y are the element's top-left corner in page
	// coordinates, before any effect translation is applied.
	X, Y          float64
	Width, Height float64

	// Render state (written by effects, read back by hosts)
	TranslateX float64
	TranslateY float64
	Opacity    float64
	Scale      float64
	Text       string
	Visible    bool

	// Metadata
	UserData any

	// Per-element callbacks (nil by default; zero cost when unused)
	OnClick      func(*Element)
	OnHoverEnter func(*Element)
	OnHoverLeave func(*Element)

	// Internal
	id          uint32
	counterDone bool // one-shot marker for the counter behavior
	disposed    bool
	dirty       bool
}

// NewElement creates an element with the given name and classes.
// Opacity and Scale default to 1, Visible to true.
func NewElement(name string, classes ...string) *Element {
	return &Element{
		Name:    name,
		Classes: classes,
		Opacity: 1,
		Scale:   1,
		Visible: true,
		id:      nextElementID(),
		dirty:   true,
	}
}

// HasClass reports whether the element carries the given class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetAttr sets a string attribute on the element.
func (e *Element) SetAttr(key, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
}

// Attr returns the attribute value, or "" if unset.
func (e *Element) Attr(key string) string {
	return e.attrs[key]
}

// HasAttr reports whether the attribute is set (even to "").
func (e *Element) HasAttr(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

// Bounds returns the element's untranslated page-space rectangle.
func (e *Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("reveal: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("reveal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("reveal: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// FindByID returns the first element in this subtree (depth-first, DOM
// order) whose ID matches, or nil if none does. Empty IDs never match.
func (e *Element) FindByID(id string) *Element {
	if id == "" {
		return nil
	}
	if e.ID == id {
		return e
	}
	for _, child := range e.children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants. Effects targeting a disposed
// element stop on their next update.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.attrs = nil
	e.UserData = nil
	e.OnClick = nil
	e.OnHoverEnter = nil
	e.OnHoverLeave = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Dirty tracking ---

// MarkDirty flags the element as changed since the host last drew it.
func (e *Element) MarkDirty() {
	e.dirty = true
}

// Dirty reports whether the element changed since the last ClearDirty.
func (e *Element) Dirty() bool {
	return e.dirty
}

// ClearDirty resets the dirty flag. Hosts call this after drawing.
func (e *Element) ClearDirty() {
	e.dirty = false
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// collectByClass appends every element in the subtree carrying any of the
// given classes, depth-first in DOM order.
func collectByClass(root *Element, classes []string, buf []*Element) []*Element {
	for _, class := range classes {
		if root.HasClass(class) {
			buf = append(buf, root)
			break
		}
	}
	for _, child := range root.children {
		buf = collectByClass(child, classes, buf)
	}
	return buf
}

// collectByAttr appends every element in the subtree carrying the given
// attribute, depth-first in DOM order.
func collectByAttr(root *Element, attr string, buf []*Element) []*Element {
	if root.HasAttr(attr) {
		buf = append(buf, root)
	}
	for _, child := range root.children {
		buf = collectByAttr(child, attr, buf)
	}
	return buf
}
