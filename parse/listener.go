package parse

// Listener receives the event sequence of a document as it is decoded.
// Each method may return a non-nil error to abort parsing; the error is
// handed back from Feed unmodified, with no further events delivered.
type Listener interface {
	ObjectBegin() error
	ObjectEnd() error
	ArrayBegin() error
	ArrayEnd() error
	Key(v string) error
	Type(v string) error
	Primitive(v string) error
}

// Callbacks adapts a set of optional functions to the Listener
// interface. Nil members are no-ops.
type Callbacks struct {
	OnObjectBegin func() error
	OnObjectEnd   func() error
	OnArrayBegin  func() error
	OnArrayEnd    func() error
	OnKey         func(v string) error
	OnType        func(v string) error
	OnPrimitive   func(v string) error
}

var _ Listener = (*Callbacks)(nil)

func (c *Callbacks) ObjectBegin() error {
	if c.OnObjectBegin == nil {
		return nil
	}
	return c.OnObjectBegin()
}

func (c *Callbacks) ObjectEnd() error {
	if c.OnObjectEnd == nil {
		return nil
	}
	return c.OnObjectEnd()
}

func (c *Callbacks) ArrayBegin() error {
	if c.OnArrayBegin == nil {
		return nil
	}
	return c.OnArrayBegin()
}

func (c *Callbacks) ArrayEnd() error {
	if c.OnArrayEnd == nil {
		return nil
	}
	return c.OnArrayEnd()
}

func (c *Callbacks) Key(v string) error {
	if c.OnKey == nil {
		return nil
	}
	return c.OnKey(v)
}

func (c *Callbacks) Type(v string) error {
	if c.OnType == nil {
		return nil
	}
	return c.OnType(v)
}

func (c *Callbacks) Primitive(v string) error {
	if c.OnPrimitive == nil {
		return nil
	}
	return c.OnPrimitive(v)
}
