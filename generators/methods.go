package generators

import (
	"fmt"
	"strings"

	"github.com/1pkg/kvgen"
)

// methods replays the sorted command traversal for one method emitting
// flavor shape. Excluded commands are skipped, a registered legacy alias
// is emitted immediately after its canonical command.
func methods(cfg Config, schema kvgen.Schema, sh shape, buf *buffer) {
	preface(cfg, sh, buf)
	for _, cmd := range sorted(cfg, schema) {
		if cfg.excluded(cmd.Def.Name) {
			continue
		}
		appendCommand(cfg, cmd, sh, buf, "")
		if alias, ok := cfg.Aliases[cmd.Def.Name]; ok {
			appendCommand(cfg, cmd.Alias(alias), sh, buf, cmd.Name())
		}
	}
	appendix(sh, buf)
}

// preface opens the enclosing construct of the flavor.
func preface(cfg Config, sh shape, buf *buffer) {
	header(cfg, buf)
	if sh.ctx {
		buf.Line("import %q", "context")
		buf.Blank()
	}
	if sh.iface {
		buf.Line("// Commands is the blocking command surface of the store.")
		buf.Line("type Commands interface {")
		buf.In()
	}
}

// appendix closes the enclosing construct of the flavor.
func appendix(sh shape, buf *buffer) {
	if sh.iface {
		buf.Out()
		buf.Line("}")
	}
}

// appendCommand emits one method for the command, or a signature for the
// interface flavor. A non empty forward marks a deprecated alias that
// forwards to the canonical method of that name.
func appendCommand(cfg Config, cmd Command, sh shape, buf *buffer, forward string) {
	params := parameters(cmd)
	if forward != "" {
		buf.Line("// %s is a deprecated alias of %s.", cmd.Name(), forward)
		buf.Line("//")
		buf.Line("// Deprecated: use %s instead.", forward)
	} else {
		for _, l := range cmd.Documentation(cfg) {
			buf.Line("%s", l)
		}
	}
	if sh.iface {
		buf.Line("%s", signature(cmd, sh, params))
		buf.Blank()
		return
	}
	buf.Line("func (%s %s) %s {", sh.recvName, sh.recv, signature(cmd, sh, params))
	buf.In()
	if forward != "" {
		buf.Line("return %s.%s(%s)", sh.recvName, forward, strings.Join(names(sh, params), ", "))
	} else {
		body(cmd, sh, params, buf)
	}
	buf.Out()
	buf.Line("}")
	buf.Blank()
}

// signature renders the method name, parameter list and return shape.
func signature(cmd Command, sh shape, params []param) string {
	args := make([]string, 0, len(params)+1)
	if sh.ctx {
		args = append(args, "ctx context.Context")
	}
	for _, p := range params {
		args = append(args, fmt.Sprintf("%s %s", p.name, p.sig()))
	}
	ret := "(interface{}, error)"
	if sh.queue {
		ret = sh.recv
	}
	return fmt.Sprintf("%s(%s) %s", cmd.Name(), strings.Join(args, ", "), ret)
}

// body composes the command and hands it to the consumed capability of
// the flavor, decode for clients, enqueue for pipelines.
func body(cmd Command, sh shape, params []param, buf *buffer) {
	buf.Line("cmd := NewCmd(%q)", cmd.Def.Name)
	for _, p := range params {
		p.write(buf)
	}
	switch {
	case sh.queue:
		buf.Line("return %s.Queue(cmd)", sh.recvName)
	case sh.ctx:
		buf.Line("return %s.DoContext(ctx, cmd)", sh.recvName)
	default:
		buf.Line("return %s.Do(cmd)", sh.recvName)
	}
}

func names(sh shape, params []param) []string {
	out := make([]string, 0, len(params)+1)
	if sh.ctx {
		out = append(out, "ctx")
	}
	for _, p := range params {
		out = append(out, p.name)
	}
	return out
}

// param is one emitted method parameter derived from a top level
// command argument.
type param struct {
	name string
	// base is the parameter type without optional or repeat decoration.
	base string
	// derived marks values that know how to write themselves.
	derived bool
	// flag marks a pure token parameter collapsed into a bool.
	flag bool
	// nilable marks an optional derived interface value checked
	// against nil instead of being wrapped into a pointer.
	nilable bool
	slice   bool
	ptr     bool
	token   string
}

// parameters maps the command top level arguments onto method
// parameters, dropping unsupported shapes.
func parameters(cmd Command) []param {
	params := make([]param, 0, len(cmd.Def.Arguments))
	for _, arg := range cmd.Def.Arguments {
		p := param{name: kvgen.Ident(arg.Name), token: arg.Token}
		switch {
		case arg.Type == kvgen.PureToken:
			p.base = "bool"
			p.flag = true
		case arg.Type == kvgen.Oneof:
			p.base = derivedName(arg)
			p.derived = true
			p.nilable = arg.Optional
		case arg.Type == kvgen.Block:
			p.base = derivedName(arg)
			p.derived = true
			p.ptr = arg.Optional
		case arg.Type.Scalar() && arg.Token != "":
			p.base = derivedName(arg)
			p.derived = true
			p.ptr = arg.Optional
		case arg.Type.Scalar():
			p.base = arg.Type.GoType()
			p.ptr = arg.Optional
		default:
			// unsupported shapes are dropped
			continue
		}
		if arg.Multiple && cmd.Mode == Full && !p.flag {
			p.slice = true
			p.ptr = false
			p.nilable = false
		}
		params = append(params, p)
	}
	return params
}

// sig renders the signature type of the parameter.
func (p param) sig() string {
	switch {
	case p.slice:
		return "[]" + p.base
	case p.ptr:
		return "*" + p.base
	default:
		return p.base
	}
}

// write emits the wire serialization lines of the parameter.
func (p param) write(buf *buffer) {
	switch {
	case p.flag:
		buf.Line("if %s {", p.name)
		buf.In()
		buf.Line("cmd.WriteArg(%q)", p.token)
		buf.Out()
		buf.Line("}")
	case p.slice && p.derived:
		buf.Line("for _, v := range %s {", p.name)
		buf.In()
		buf.Line("v.WriteArgs(cmd)")
		buf.Out()
		buf.Line("}")
	case p.slice:
		buf.Line("for _, v := range %s {", p.name)
		buf.In()
		buf.Line("cmd.WriteArg(v)")
		buf.Out()
		buf.Line("}")
	case p.ptr && p.derived, p.nilable:
		buf.Line("if %s != nil {", p.name)
		buf.In()
		buf.Line("%s.WriteArgs(cmd)", p.name)
		buf.Out()
		buf.Line("}")
	case p.ptr:
		buf.Line("if %s != nil {", p.name)
		buf.In()
		buf.Line("cmd.WriteArg(*%s)", p.name)
		buf.Out()
		buf.Line("}")
	case p.derived:
		buf.Line("%s.WriteArgs(cmd)", p.name)
	default:
		buf.Line("cmd.WriteArg(%s)", p.name)
	}
}
