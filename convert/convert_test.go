package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestConvertXMLToJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.xml", `<root><item>1</item><item>2</item></root>`)
	out := filepath.Join(dir, "out.json")
	if err := Convert(in, out); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "root": {
        "item": [
            "1",
            "2"
        ]
    }
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("output mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestConvertChain(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.xml", `<cfg name="svc">  hi  <db host="h" port="5432"/><opt>a</opt><opt>b</opt></cfg>`)
	yml := filepath.Join(dir, "mid.yml")
	js := filepath.Join(dir, "mid.json")
	back := filepath.Join(dir, "back.yaml")
	for _, step := range [][2]string{{in, yml}, {yml, js}, {js, back}} {
		if err := Convert(step[0], step[1]); err != nil {
			t.Fatalf("Convert(%s, %s): %v", step[0], step[1], err)
		}
	}
	a, err := ConvertBytes(mustRead(t, in), format.XMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ConvertBytes(mustRead(t, back), format.YAMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		t.Errorf("xml->yaml->json->yaml differs from xml (-xml +chain):\n%s", diff)
	}
	if !strings.Contains(string(a), `"text": "hi"`) {
		t.Errorf("inline text not kept:\n%s", a)
	}
}

func mustRead(t *testing.T, p string) []byte {
	t.Helper()
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestConvertUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	// the input does not exist: classification must fail first
	err := Convert(filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.json"))
	if !errors.Is(err, ir.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	in := writeInput(t, dir, "a.json", `{}`)
	err = Convert(in, filepath.Join(dir, "b.csv"))
	if !errors.Is(err, ir.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	assertNoFile(t, filepath.Join(dir, "b.csv"))
	assertNoFile(t, filepath.Join(dir, "b.json"))
}

func TestConvertUnsupportedShape(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"list root", `["a", "b"]`},
		{"list entry", `{"root": {"item": ["1", "2"]}}`},
		{"scalar root", `"x"`},
		{"two roots", `{"a": {}, "b": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, "in.json", tt.in)
			out := filepath.Join(dir, "out.xml")
			err := Convert(in, out)
			if !errors.Is(err, ir.ErrUnsupportedShape) {
				t.Fatalf("error = %v, want ErrUnsupportedShape", err)
			}
			assertNoFile(t, out)
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("directory has %d entries, want only the input", len(entries))
			}
		})
	}
}

func TestConvertKeepsOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"root": `)
	out := writeInput(t, dir, "out.yaml", "previous: content\n")
	err := Convert(in, out)
	if !errors.Is(err, ir.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
	if got := string(mustRead(t, out)); got != "previous: content\n" {
		t.Errorf("output was modified: %q", got)
	}
}

func TestConvertKeepsOutputMode(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"a": "b"}`)
	out := writeInput(t, dir, "out.yaml", "old: 1\n")
	if err := os.Chmod(out, 0600); err != nil {
		t.Fatal(err)
	}
	if err := Convert(in, out); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("output mode = %v, want 0600", info.Mode().Perm())
	}
	if got := string(mustRead(t, out)); got != "a: b\n" {
		t.Errorf("output = %q", got)
	}
}

func TestConvertThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.json", `{"a": "b"}`)
	target := writeInput(t, dir, "target.yaml", "old: 1\n")
	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := Convert(in, link); err != nil {
		t.Fatal(err)
	}
	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("%s is no longer a symlink", link)
	}
	if got := string(mustRead(t, target)); got != "a: b\n" {
		t.Errorf("target = %q", got)
	}
}

func TestConvertIOErrors(t *testing.T) {
	dir := t.TempDir()
	err := Convert(filepath.Join(dir, "missing.xml"), filepath.Join(dir, "out.json"))
	if !errors.Is(err, ir.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
	in := writeInput(t, dir, "in.xml", `<r/>`)
	err = Convert(in, filepath.Join(dir, "no", "such", "dir", "out.json"))
	if !errors.Is(err, ir.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
}

func TestConvertFormatOverride(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.data", "root:\n  a: b\n")
	out := filepath.Join(dir, "out.data")
	if err := Convert(in, out, InFormat(format.YAMLFormat), OutFormat(format.XMLFormat), Indent(4)); err != nil {
		t.Fatal(err)
	}
	if got := string(mustRead(t, out)); !strings.Contains(got, `<root a="b"/>`) {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	report := &bytes.Buffer{}
	_, err := ConvertBytes([]byte(`{"root": {"n": 1, "e": {}, "s": "x"}}`),
		format.JSONFormat, format.XMLFormat, CheckRoundTrip(report))
	if err != nil {
		t.Fatal(err)
	}
	want := `conversion from json to xml is lossy:
- $.root.e = {}
- $.root.n = 1
+ $.root.e = null
+ $.root.n = "1"
`
	if diff := cmp.Diff(want, report.String()); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}

	report.Reset()
	_, err = ConvertBytes([]byte(`<root id="1"><a b="2">t</a></root>`),
		format.XMLFormat, format.XMLFormat, CheckRoundTrip(report))
	if err != nil {
		t.Fatal(err)
	}
	if report.Len() != 0 {
		t.Errorf("unexpected report for lossless conversion:\n%s", report)
	}
}

func assertNoFile(t *testing.T, p string) {
	t.Helper()
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("%s should not exist (stat error %v)", p, err)
	}
}
