package generators

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1pkg/kvgen"
)

func testConfig() Config {
	return Config{
		Package: "kv",
		Exclude: []string{"SCAN"},
		Aliases: map[string]string{"GETDEL": "GetDelete"},
	}
}

func testSchema() kvgen.Schema {
	return kvgen.Schema{Commands: []kvgen.Definition{
		{
			Name:       "SET",
			Group:      "string",
			Summary:    "Set the string value of a key.",
			Since:      "1.0.0",
			Complexity: "O(1)",
			Flags:      []string{"write", "denyoom"},
			Arguments: []kvgen.Argument{
				{Name: "key", Type: kvgen.Key},
				{Name: "value", Type: kvgen.String},
				{Name: "expiration", Type: kvgen.Oneof, Optional: true, Arguments: []kvgen.Argument{
					{Name: "seconds", Type: kvgen.Integer, Token: "EX"},
					{Name: "milliseconds", Type: kvgen.Integer, Token: "PX"},
					{Name: "keepttl", Type: kvgen.PureToken, Token: "KEEPTTL"},
				}},
				{Name: "condition", Type: kvgen.Oneof, Optional: true, Arguments: []kvgen.Argument{
					{Name: "nx", Type: kvgen.PureToken, Token: "NX"},
					{Name: "xx", Type: kvgen.PureToken, Token: "XX"},
				}},
			},
		},
		{
			Name:       "GET",
			Group:      "string",
			Summary:    "Get the value of a key.",
			Since:      "1.0.0",
			Complexity: "O(1)",
			Flags:      []string{"readonly", "fast"},
			Arguments:  []kvgen.Argument{{Name: "key", Type: kvgen.Key}},
		},
		{
			Name:      "GETDEL",
			Group:     "string",
			Since:     "6.2.0",
			Arguments: []kvgen.Argument{{Name: "key", Type: kvgen.Key}},
		},
		{
			Name:      "MGET",
			Group:     "string",
			Arguments: []kvgen.Argument{{Name: "key", Type: kvgen.Key, Multiple: true}},
		},
		{
			Name:  "COPY",
			Group: "generic",
			Arguments: []kvgen.Argument{
				{Name: "source", Type: kvgen.Key},
				{Name: "destination", Type: kvgen.Key},
				{Name: "db", Type: kvgen.Integer, Token: "DB", Optional: true},
				{Name: "replace", Type: kvgen.PureToken, Token: "REPLACE", Optional: true},
			},
		},
		{
			Name:      "SCAN",
			Group:     "generic",
			Arguments: []kvgen.Argument{{Name: "cursor", Type: kvgen.Integer}},
		},
	}}
}

func generate(t *testing.T, flavor Flavor) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, Generate(testConfig(), testSchema(), flavor, &b))
	return b.String()
}

func TestGenerateDeterminism(t *testing.T) {
	for _, flavor := range Flavors() {
		flavor := flavor
		t.Run(string(flavor), func(t *testing.T) {
			require.Equal(t, generate(t, flavor), generate(t, flavor))
		})
	}
}

func TestGenerateUnknownFlavor(t *testing.T) {
	var b bytes.Buffer
	err := Generate(testConfig(), testSchema(), Flavor("plugin"), &b)
	require.EqualError(t, err, `unknown output flavor "plugin"`)
	require.Empty(t, b.String())
}

func TestGenerateCommands(t *testing.T) {
	out := generate(t, FlavorCommands)
	assert.Contains(t, out, "type Commands interface {")
	assert.Contains(t, out, "Get(key string) (interface{}, error)")
	assert.Contains(t, out, "Set(key string, value string, expiration Expiration, condition Condition) (interface{}, error)")
	assert.Contains(t, out, "Copy(source string, destination string, db *Db, replace bool) (interface{}, error)")
	assert.Contains(t, out, "Mget(key []string) (interface{}, error)")
	assert.NotContains(t, out, "func (")
}

func TestGenerateImpl(t *testing.T) {
	out := generate(t, FlavorImpl)
	assert.Contains(t, out, "func (c *Client) Get(key string) (interface{}, error) {")
	assert.Contains(t, out, `cmd := NewCmd("GET")`)
	assert.Contains(t, out, "return c.Do(cmd)")
	// optional oneof parameters are checked against nil before writing.
	assert.Contains(t, out, "if expiration != nil {")
	assert.Contains(t, out, "expiration.WriteArgs(cmd)")
	// optional newtype parameters are pointers.
	assert.Contains(t, out, "if db != nil {")
	assert.Contains(t, out, "db.WriteArgs(cmd)")
	// top level pure tokens collapse into bool parameters.
	assert.Contains(t, out, "if replace {")
	assert.Contains(t, out, `cmd.WriteArg("REPLACE")`)
	// repeated scalars surface as slices.
	assert.Contains(t, out, "for _, v := range key {")
	assert.Contains(t, out, "cmd.WriteArg(v)")
}

func TestGenerateAsync(t *testing.T) {
	out := generate(t, FlavorAsync)
	assert.Contains(t, out, `import "context"`)
	assert.Contains(t, out, "func (c *AsyncClient) Get(ctx context.Context, key string) (interface{}, error) {")
	assert.Contains(t, out, "return c.DoContext(ctx, cmd)")
}

func TestGeneratePipelines(t *testing.T) {
	out := generate(t, FlavorPipeline)
	assert.Contains(t, out, "func (p *Pipeline) Get(key string) *Pipeline {")
	assert.Contains(t, out, "return p.Queue(cmd)")
	out = generate(t, FlavorCluster)
	assert.Contains(t, out, "func (p *ClusterPipeline) Get(key string) *ClusterPipeline {")
	assert.Contains(t, out, "return p.Queue(cmd)")
}

func TestGenerateExclusion(t *testing.T) {
	for _, flavor := range Flavors() {
		flavor := flavor
		t.Run(string(flavor), func(t *testing.T) {
			out := generate(t, flavor)
			assert.NotContains(t, out, "SCAN")
			assert.NotContains(t, out, "Scan(")
		})
	}
}

func TestGenerateAlias(t *testing.T) {
	out := generate(t, FlavorImpl)
	canonical := strings.Index(out, "func (c *Client) Getdel(key string) (interface{}, error) {")
	alias := strings.Index(out, "func (c *Client) GetDelete(key string) (interface{}, error) {")
	require.GreaterOrEqual(t, canonical, 0)
	require.Greater(t, alias, canonical)
	// the alias is emitted immediately after its canonical command,
	// before the next command in traversal order.
	next := strings.Index(out, "func (c *Client) Mget(")
	require.Greater(t, next, alias)
	assert.Contains(t, out, "// GetDelete is a deprecated alias of Getdel.")
	assert.Contains(t, out, "// Deprecated: use Getdel instead.")
	assert.Contains(t, out, "return c.Getdel(key)")
}

func TestGenerateIgnoreMultiple(t *testing.T) {
	cfg := Config{Package: "kv", IgnoreMultiple: []string{"DEL"}}
	schema := kvgen.Schema{Commands: []kvgen.Definition{
		{Name: "DEL", Group: "generic", Arguments: []kvgen.Argument{{Name: "key", Type: kvgen.Key, Multiple: true}}},
		{Name: "UNLINK", Group: "generic", Arguments: []kvgen.Argument{{Name: "key", Type: kvgen.Key, Multiple: true}}},
	}}
	var b bytes.Buffer
	require.NoError(t, Generate(cfg, schema, FlavorImpl, &b))
	out := b.String()
	// repeated arguments collapse to single values under IgnoreMultiple.
	assert.Contains(t, out, "func (c *Client) Del(key string) (interface{}, error) {")
	assert.Contains(t, out, "func (c *Client) Unlink(key []string) (interface{}, error) {")
}

func TestGenerateUnsupportedShapes(t *testing.T) {
	schema := kvgen.Schema{Commands: []kvgen.Definition{
		{Name: "GETEX", Group: "string", Arguments: []kvgen.Argument{
			{Name: "key", Type: kvgen.Key},
			{Name: "at", Type: kvgen.UnixTime, Token: "EXAT", Optional: true},
		}},
	}}
	var b bytes.Buffer
	require.NoError(t, Generate(Config{Package: "kv"}, schema, FlavorImpl, &b))
	// unsupported shapes are dropped silently from signatures.
	assert.Contains(t, b.String(), "func (c *Client) Getex(key string) (interface{}, error) {")
	assert.NotContains(t, b.String(), "EXAT")
}

func TestGenerateDocumentation(t *testing.T) {
	out := generate(t, FlavorCommands)
	assert.Contains(t, out, "// Get implements the GET command.")
	assert.Contains(t, out, "// Get the value of a key.")
	assert.Contains(t, out, "// Since: 1.0.0. Complexity: O(1).")
	assert.Contains(t, out, "// Group: string. Flags: readonly, fast.")
}
