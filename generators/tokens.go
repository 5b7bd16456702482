package generators

import (
	"github.com/1pkg/kvgen"
)

// tokens runs the argument shape synthesis engine once over the full
// sorted command traversal and emits derived types plus their wire
// serialization, no command methods. The pass is two phased, collect
// first discovers the deduplicated set of derived types, emit then
// renders the finalized set in registration order.
func tokens(cfg Config, schema kvgen.Schema, buf *buffer) {
	header(cfg, buf)
	for _, t := range collect(cfg, schema).order {
		t.emit(buf)
	}
}

// derivedName computes the name a derived type is registered under,
// the argument wire token camel cased when present, the argument field
// name camel cased otherwise.
func derivedName(arg kvgen.Argument) string {
	if arg.Token != "" {
		return kvgen.Camel(arg.Token)
	}
	return kvgen.Camel(arg.Name)
}

type tokenKind uint8

const (
	newType tokenKind = iota
	recordType
	variantType
)

// token is one derived type description, a newtype over a scalar, a
// record for a block or a tagged union for a oneof, created once per
// pass and never mutated afterwards.
type token struct {
	name string
	kind tokenKind
	// wire and inner describe a newtype.
	wire  string
	inner string
	// fields describe a record.
	fields []field
	// variants describe a tagged union.
	variants []variant
}

// field is a record field, either a typed value or a bool flag bound
// to a wire token.
type field struct {
	name    string
	typ     string
	wire    string
	flag    bool
	derived bool
}

type variantKind uint8

const (
	// marker serializes only its wire token, no payload.
	marker variantKind = iota
	// wrapper serializes its wire token then the wrapped value.
	wrapper
	// record serializes its wire token then every field in order.
	record
)

type variant struct {
	name    string
	kind    variantKind
	wire    string
	inner   string
	derived bool
	fields  []field
}

// registry accumulates the derived types of one pass keyed by name.
// The policy is firstRegistrationWins, a later occurrence deriving an
// already used name reuses the first registration and is otherwise
// ignored, the schema gives no signal to tell intentional sharing from
// a collision.
type registry struct {
	byName map[string]struct{}
	order  []token
}

func (r *registry) has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

func (r *registry) register(t token) {
	if r.has(t.name) {
		return
	}
	r.byName[t.name] = struct{}{}
	r.order = append(r.order, t)
}

// collect seeds a work list with every top level argument of every
// traversed command and folds it into the deduplicated derived type
// set. Classifying an argument only pushes arguments one nesting level
// down, so the loop terminates on any finite argument tree.
func collect(cfg Config, schema kvgen.Schema) *registry {
	reg := &registry{byName: map[string]struct{}{}}
	var work []kvgen.Argument
	for _, cmd := range sorted(cfg, schema) {
		if cfg.excluded(cmd.Def.Name) {
			continue
		}
		work = append(work, cmd.Def.Arguments...)
	}
	for len(work) > 0 {
		arg := work[0]
		work = work[1:]
		switch {
		case arg.Type == kvgen.Oneof:
			work = append(work, reg.oneof(arg)...)
		case arg.Type == kvgen.Block:
			work = append(work, reg.block(arg)...)
		case arg.Type.Scalar() && arg.Token != "":
			reg.register(token{
				name:  derivedName(arg),
				kind:  newType,
				wire:  arg.Token,
				inner: arg.Type.GoType(),
			})
		}
		// any other shape is dropped silently
	}
	return reg
}

// oneof registers a tagged union with one variant per sub argument in
// source order and returns the nested arguments to revisit.
func (r *registry) oneof(arg kvgen.Argument) []kvgen.Argument {
	name := derivedName(arg)
	if r.has(name) {
		return nil
	}
	t := token{name: name, kind: variantType}
	var push []kvgen.Argument
	for _, sub := range arg.Arguments {
		v := variant{name: derivedName(sub), wire: sub.Token}
		switch {
		case sub.Type == kvgen.PureToken:
			v.kind = marker
		case sub.Type == kvgen.Oneof:
			v.kind = wrapper
			v.inner = derivedName(sub)
			v.derived = true
			push = append(push, sub)
		case sub.Type == kvgen.Block:
			v.kind = record
			var nested []kvgen.Argument
			v.fields, nested = blockFields(sub)
			push = append(push, nested...)
		case sub.Type.Scalar():
			v.kind = wrapper
			v.inner = sub.Type.GoType()
		default:
			// unsupported shapes are dropped
			continue
		}
		t.variants = append(t.variants, v)
	}
	r.register(t)
	return push
}

// block registers a record with one field per eligible sub argument in
// source order and returns the nested arguments to revisit.
func (r *registry) block(arg kvgen.Argument) []kvgen.Argument {
	name := derivedName(arg)
	if r.has(name) {
		return nil
	}
	fields, push := blockFields(arg)
	r.register(token{name: name, kind: recordType, fields: fields})
	return push
}

// blockFields resolves block sub arguments into record fields. A pure
// token collapses into a bool flag bound to its wire token, a nested
// oneof or block and a token carrying scalar become derived type fields
// revisited through the work list, a plain scalar becomes a typed field.
func blockFields(arg kvgen.Argument) ([]field, []kvgen.Argument) {
	var fields []field
	var push []kvgen.Argument
	for _, sub := range arg.Arguments {
		f := field{name: kvgen.Camel(sub.Name)}
		switch {
		case sub.Type == kvgen.PureToken:
			f.typ = "bool"
			f.wire = sub.Token
			f.flag = true
		case sub.Type == kvgen.Oneof, sub.Type == kvgen.Block:
			f.typ = derivedName(sub)
			f.derived = true
			push = append(push, sub)
		case sub.Type.Scalar() && sub.Token != "":
			f.typ = derivedName(sub)
			f.derived = true
			push = append(push, sub)
		case sub.Type.Scalar():
			f.typ = sub.Type.GoType()
		default:
			// unsupported shapes are dropped
			continue
		}
		fields = append(fields, f)
	}
	return fields, push
}

// emit renders the type declaration and the WriteArgs serialization
// body of the derived type.
func (t token) emit(buf *buffer) {
	switch t.kind {
	case newType:
		t.emitNewType(buf)
	case recordType:
		t.emitRecord(buf)
	case variantType:
		t.emitVariant(buf)
	}
}

func (t token) emitNewType(buf *buffer) {
	buf.Line("// %s is the %s argument.", t.name, t.wire)
	buf.Line("type %s %s", t.name, t.inner)
	buf.Blank()
	buf.Line("func (v %s) WriteArgs(w ArgWriter) {", t.name)
	buf.In()
	if t.wire != "" {
		buf.Line("w.WriteArg(%q)", t.wire)
	}
	buf.Line("w.WriteArg(%s(v))", t.inner)
	buf.Out()
	buf.Line("}")
	buf.Blank()
}

func (t token) emitRecord(buf *buffer) {
	buf.Line("// %s groups arguments appearing together on the wire.", t.name)
	buf.Line("type %s struct {", t.name)
	buf.In()
	for _, f := range t.fields {
		buf.Line("%s %s", f.name, f.typ)
	}
	buf.Out()
	buf.Line("}")
	buf.Blank()
	buf.Line("func (v %s) WriteArgs(w ArgWriter) {", t.name)
	buf.In()
	emitFields(t.fields, buf)
	buf.Out()
	buf.Line("}")
	buf.Blank()
}

func (t token) emitVariant(buf *buffer) {
	disc := kvgen.LowerCamel(t.name) + "Variant"
	buf.Line("// %s is one alternative argument shape, exactly one", t.name)
	buf.Line("// implementation is present on the wire.")
	buf.Line("type %s interface {", t.name)
	buf.In()
	buf.Line("Arg")
	buf.Line("%s()", disc)
	buf.Out()
	buf.Line("}")
	buf.Blank()
	for _, v := range t.variants {
		name := t.name + v.name
		switch v.kind {
		case marker:
			buf.Line("// %s is the %s variant of %s.", name, v.wire, t.name)
			buf.Line("type %s struct{}", name)
			buf.Blank()
			buf.Line("func (%s) WriteArgs(w ArgWriter) {", name)
			buf.In()
			if v.wire != "" {
				buf.Line("w.WriteArg(%q)", v.wire)
			}
			buf.Out()
			buf.Line("}")
		case wrapper:
			buf.Line("// %s is the %s variant of %s.", name, v.name, t.name)
			buf.Line("type %s struct {", name)
			buf.In()
			buf.Line("Val %s", v.inner)
			buf.Out()
			buf.Line("}")
			buf.Blank()
			buf.Line("func (v %s) WriteArgs(w ArgWriter) {", name)
			buf.In()
			if v.wire != "" {
				buf.Line("w.WriteArg(%q)", v.wire)
			}
			if v.derived {
				buf.Line("v.Val.WriteArgs(w)")
			} else {
				buf.Line("w.WriteArg(v.Val)")
			}
			buf.Out()
			buf.Line("}")
		case record:
			buf.Line("// %s is the %s variant of %s.", name, v.name, t.name)
			buf.Line("type %s struct {", name)
			buf.In()
			for _, f := range v.fields {
				buf.Line("%s %s", f.name, f.typ)
			}
			buf.Out()
			buf.Line("}")
			buf.Blank()
			buf.Line("func (v %s) WriteArgs(w ArgWriter) {", name)
			buf.In()
			if v.wire != "" {
				buf.Line("w.WriteArg(%q)", v.wire)
			}
			emitFields(v.fields, buf)
			buf.Out()
			buf.Line("}")
		}
		buf.Blank()
		buf.Line("func (%s) %s() {}", name, disc)
		buf.Blank()
	}
}

func emitFields(fields []field, buf *buffer) {
	for _, f := range fields {
		switch {
		case f.flag:
			buf.Line("if v.%s {", f.name)
			buf.In()
			buf.Line("w.WriteArg(%q)", f.wire)
			buf.Out()
			buf.Line("}")
		case f.derived:
			buf.Line("v.%s.WriteArgs(w)", f.name)
		default:
			buf.Line("w.WriteArg(v.%s)", f.name)
		}
	}
}
