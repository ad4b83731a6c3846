package symbol

// A Table interns symbol names. Interning the same text twice returns
// the same canonical string, backed by storage the table owns, so the
// result stays valid even if the caller's source buffer is reused.
// The table is append-only; Clear is the only way entries go away, and
// it invalidates every previously returned canonical string.
type Table struct {
	names map[string]string
}

func NewTable() *Table {
	return &Table{names: map[string]string{}}
}

// Intern returns the canonical copy of name, inserting it on first use.
// The returned string never aliases the caller's storage.
func (t *Table) Intern(name string) string {
	if s, ok := t.names[name]; ok {
		return s
	}
	owned := string(append([]byte(nil), name...))
	t.names[owned] = owned
	return owned
}

// Len returns the number of distinct names interned so far.
func (t *Table) Len() int { return len(t.names) }

// Clear drops every interned name.
func (t *Table) Clear() {
	t.names = map[string]string{}
}
