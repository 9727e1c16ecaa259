package inspect

// Field is one entry of a [Record].
type Field struct {
	Key   string
	Value any
}

// Record is an object whose keys are only known at run time. Unlike a map it
// keeps its fields in insertion order, so it is how decoded documents and
// structured log groups are displayed.
type Record []Field

// Get returns the value of the first field named key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the first field named key or appends a new field.
func (r *Record) Set(key string, value any) {
	for i := range *r {
		if (*r)[i].Key == key {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Key: key, Value: value})
}
