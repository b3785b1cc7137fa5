package typeframe

import (
	"strings"

	"github.com/typeframe/typeframe/frame"
)

// Schema is a named, ordered set of declared fields with unique names.
// Built once by a Builder, immutable afterwards; safe to share by value
// across any number of tables and readers.
type Schema struct {
	name   string
	fields []frame.Field
}

func (s Schema) Name() string { return s.name }

// Fields returns the declared (name, type) pairs in declaration order.
func (s Schema) Fields() []frame.Field {
	fields := make([]frame.Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

func (s Schema) Len() int { return len(s.fields) }

// Lookup finds a declared field by name.
func (s Schema) Lookup(name string) (frame.Field, bool) {
	for _, field := range s.fields {
		if field.Name == name {
			return field, true
		}
	}
	return frame.Field{}, false
}

func (s Schema) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	sb.WriteString("(")
	for i, field := range s.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(field.Name)
		sb.WriteString(" ")
		sb.WriteString(field.Type.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Builder registers a schema. Declare one builder per schema, call Field once
// per column to obtain its token, then Build (or MustBuild) exactly once:
//
//	var users = typeframe.NewBuilder("users")
//	var (
//		UserID   = typeframe.Field[int64](users, "id")
//		UserName = typeframe.Field[string](users, "name")
//	)
//	var Users = users.MustBuild()
//
// Every later use site references the returned tokens, never the name string,
// so a misspelled column is an unresolved identifier at compile time.
type Builder struct {
	name   string
	fields []frame.Field
	built  bool
}

func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Field declares one column and returns its token. Duplicate names are
// reported by Build for the whole registration, not here.
func Field[T Element](b *Builder, name string) Column[T] {
	if b.built {
		panic("typeframe: Field called after Build on schema " + b.name)
	}
	b.fields = append(b.fields, frame.Field{Name: name, Type: TypeOf[T]()})
	return Column[T]{name: name}
}

// Build finalizes the registration. Field names must be unique; a duplicate
// fails the whole schema with *DuplicateFieldError.
func (b *Builder) Build() (Schema, error) {
	seen := make(map[string]struct{}, len(b.fields))
	for _, field := range b.fields {
		if _, ok := seen[field.Name]; ok {
			return Schema{}, &DuplicateFieldError{Name: field.Name}
		}
		seen[field.Name] = struct{}{}
	}
	b.built = true
	fields := make([]frame.Field, len(b.fields))
	copy(fields, b.fields)
	return Schema{name: b.name, fields: fields}, nil
}

// MustBuild is Build for package-level registration: a duplicate field name
// panics at program init, before any data flows.
func (b *Builder) MustBuild() Schema {
	schema, err := b.Build()
	if err != nil {
		panic("typeframe: " + err.Error())
	}
	return schema
}
