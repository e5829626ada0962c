package parse

import (
	"errors"
	"testing"

	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
)

type parseTest struct {
	in   string
	want *ir.Node
}

func kvs(pairs ...any) *ir.Node {
	res := ir.FromKeyVals(nil)
	for i := 0; i < len(pairs); i += 2 {
		res.Put(pairs[i].(string), pairs[i+1].(*ir.Node))
	}
	return res
}

func list(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }

func s(v string) *ir.Node { return ir.FromString(v) }

func checkParse(t *testing.T, f format.Format, pts []parseTest) {
	t.Helper()
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got, err := ParseString(pt.in, ParseFormat(f))
			if err != nil {
				t.Fatalf("Parse(%q): %v", pt.in, err)
			}
			if !ir.EqualOrdered(pt.want, got) {
				t.Errorf("Parse(%q)\n got %s\nwant %s", pt.in, got.Compact(), pt.want.Compact())
			}
		})
	}
}

func TestParseXML(t *testing.T) {
	checkParse(t, format.XMLFormat, []parseTest{
		{
			in:   `<root><item>1</item><item>2</item></root>`,
			want: kvs("root", kvs("item", list(s("1"), s("2")))),
		},
		{
			in:   "<?xml version=\"1.0\"?>\n<!-- c -->\n<r a=\"1\"/>",
			want: kvs("r", kvs("a", s("1"))),
		},
	})
}

func TestParseJSON(t *testing.T) {
	checkParse(t, format.JSONFormat, []parseTest{
		{in: `null`, want: ir.Null()},
		{in: `true`, want: ir.FromBool(true)},
		{in: `false`, want: ir.FromBool(false)},
		{in: `22`, want: ir.FromNumber("22")},
		{in: `-1.5e3`, want: ir.FromNumber("-1.5e3")},
		{in: `"h\u00e9\"llo"`, want: s("hé\"llo")},
		{in: `[]`, want: list()},
		{
			in:   `{"z": 1, "a": [true, null, "x"], "m": {}}`,
			want: kvs("z", ir.FromNumber("1"), "a", list(ir.FromBool(true), ir.Null(), s("x")), "m", kvs()),
		},
		{
			in:   `{"a": 1, "b": 2, "a": 3}`,
			want: kvs("a", ir.FromNumber("3"), "b", ir.FromNumber("2")),
		},
		{
			in: `{
	// comment
	"root": {"item": ["1", "2",],},
}`,
			want: kvs("root", kvs("item", list(s("1"), s("2")))),
		},
	})
}

func TestParseYAML(t *testing.T) {
	checkParse(t, format.YAMLFormat, []parseTest{
		{in: ``, want: ir.Null()},
		{in: `hello`, want: s("hello")},
		{in: `"22"`, want: s("22")},
		{in: `22`, want: ir.FromNumber("22")},
		{in: `-3`, want: ir.FromNumber("-3")},
		{in: `1.5`, want: ir.FromNumber("1.5")},
		{in: `true`, want: ir.FromBool(true)},
		{in: `~`, want: ir.Null()},
		{in: "---\na: 1\n", want: kvs("a", ir.FromNumber("1"))},
		{
			in: `root:
  z: 1
  a:
    - x
    - null
  m: {}
`,
			want: kvs("root", kvs("z", ir.FromNumber("1"), "a", list(s("x"), ir.Null()), "m", kvs())),
		},
		{
			in:   "1: one\ntrue: two\n",
			want: kvs("1", s("one"), "true", s("two")),
		},
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		f    format.Format
	}{
		{"xml unclosed", `<root><a></root>`, format.XMLFormat},
		{"xml empty", ``, format.XMLFormat},
		{"xml text only", `just text`, format.XMLFormat},
		{"xml two roots", `<a>1</a><b>2</b>`, format.XMLFormat},
		{"xml text after root", `<a>1</a>junk`, format.XMLFormat},
		{"xml text before root", `junk<a>1</a>`, format.XMLFormat},
		{"json truncated", `{"a": `, format.JSONFormat},
		{"json empty", ``, format.JSONFormat},
		{"yaml nested mapping value", "a: b: c\n", format.YAMLFormat},
		{"yaml unclosed flow", `{a: [1, 2}`, format.YAMLFormat},
		{"yaml two documents", "a: 1\n---\nb: 2\n", format.YAMLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in, ParseFormat(tt.f))
			if !errors.Is(err, ir.ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.in, err)
			}
		})
	}
}

func TestParseBadFormat(t *testing.T) {
	_, err := ParseString(`{}`, ParseFormat(format.Format(99)))
	if !errors.Is(err, format.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}
