package lang

import (
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var abc = []byte("ABC")

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func ok(s string) func() (string, error) {
	return func() (string, error) { return s, nil }
}

func TestLiteralStyles_ABC(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"ruby", ok(Ruby(abc, Options{})), "buf = \n\"\\x41\\x42\\x43\"\n"},
		{"c", ok(C(abc, Options{})), "unsigned char buf[] = \n\"\\x41\\x42\\x43\";\n"},
		{"csharp", ok(CSharp(abc, Options{})), "byte[] buf = new byte[3] {0x41,0x42,0x43};\n"},
		{"golang", ok(Golang(abc, Options{})), "buf :=  []byte{0x41,0x42,0x43};\n"},
		{"rust", ok(Rust(abc, Options{})), "let buf: [u8; 3] = [0x41,0x42,0x43];\n"},
		{"perl", ok(Perl(abc, Options{})), "my $buf = \n\"\\x41\\x42\\x43\";\n"},
		{"python", ok(Python(abc, Options{})), "buf =  b\"\"\nbuf += b\"\\x41\\x42\\x43\"\n"},
		{"bash", ok(Bash(abc, Options{})), "export buf=\\\n$'\\x41\\x42\\x43'\n"},
		{"java", ok(Java(abc, Options{})), "byte shell[] = new byte[]\n{\n\t(byte) 0x41, (byte) 0x42, (byte) 0x43\n};\n"},
		{"vbscript", ok(VBScript(abc, Options{})), "buf=Chr(65)&Chr(66)&Chr(67)"},
		{"vbapplication", ok(VBApplication(abc, Options{})), "buf = Array(65,66,67)\r\n"},
		{"nim", func() (string, error) { return Nim(abc, Options{}) }, "var buf: array[3, byte] = [\nbyte 0x41,0x42,0x43]\n"},
		{"masm", func() (string, error) { return MASM(abc, Options{}) }, "shellcode DB 41h,42h,43h\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestC_CustomName(t *testing.T) {
	got := C(abc, Options{Name: "payload"})
	if !strings.HasPrefix(got, "unsigned char payload[] = \n") {
		t.Errorf("got %q, want payload header", got)
	}
	if !strings.Contains(got, `\x41\x42\x43`) || !strings.HasSuffix(got, "\";\n") {
		t.Errorf("got %q, want escapes and terminal \";", got)
	}
}

func TestHexify_Wrap(t *testing.T) {
	// `"` + five escapes = 21 >= 20 closes the line after the fifth byte.
	got := C(seq(6), Options{Wrap: 20})
	want := "unsigned char buf[] = \n" +
		"\"\\x00\\x01\\x02\\x03\\x04\"\n" +
		"\"\\x05\";\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestHexify_WrapOnLastByte(t *testing.T) {
	got := C(seq(5), Options{Wrap: 20})
	want := "unsigned char buf[] = \n\"\\x00\\x01\\x02\\x03\\x04\";\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNumhexify_Wrap(t *testing.T) {
	got := Golang(seq(5), Options{Wrap: 20})
	want := "buf :=  []byte{0x00,0x01,0x02,0x03,\n0x04};\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyInput_Tolerated(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"c", C(nil, Options{}), "unsigned char buf[] = \n\"\";\n"},
		{"golang", Golang(nil, Options{}), "buf :=  []byte{};\n"},
		{"csharp", CSharp(nil, Options{}), "byte[] buf = new byte[0] {};\n"},
		{"rust", Rust([]byte{}, Options{}), "let buf: [u8; 0] = [];\n"},
		{"python", Python(nil, Options{}), "buf =  b\"\"\nbuf += b\"\"\n"},
		{"java", Java(nil, Options{}), "byte shell[] = new byte[]\n{\n\n};\n"},
		{"vbscript nil", VBScript(nil, Options{}), "buf"},
		{"vbscript empty", VBScript([]byte{}, Options{Name: "x"}), "x"},
		{"vbapplication nil", VBApplication(nil, Options{}), "buf = Array()"},
		{"vbapplication empty", VBApplication([]byte{}, Options{}), "buf = Array()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEmptyInput_Rejected(t *testing.T) {
	if _, err := MASM(nil, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("MASM(nil) err = %v, want ErrEmptyInput", err)
	}
	if _, err := Nim([]byte{}, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Nim(empty) err = %v, want ErrEmptyInput", err)
	}
	if _, err := Format(StyleMASM, nil, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Format(masm, nil) err = %v, want ErrEmptyInput", err)
	}
}

func TestMASM_Layout(t *testing.T) {
	got, err := MASM(append(seq(8), 0xab), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := "shellcode DB 00h,01h,02h,03h,04h,05h,06h,07h\nDB 0abh\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = MASM([]byte{0xff, 0x9f, 0xa0}, Options{Name: "sc"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "sc DB 0ffh,9fh,0a0h\n" {
		t.Errorf("got %q", got)
	}
}

func TestJava_GroupsOfEight(t *testing.T) {
	got := Java(seq(9), Options{Name: "b"})
	want := "byte b[] = new byte[]\n{\n" +
		"\t(byte) 0x00, (byte) 0x01, (byte) 0x02, (byte) 0x03, (byte) 0x04, (byte) 0x05, (byte) 0x06, (byte) 0x07,\n" +
		"\t(byte) 0x08\n};\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = Java(seq(8), Options{})
	if strings.Contains(got, ",\n") {
		t.Errorf("exactly eight bytes should not end with a separator: %q", got)
	}
}

func TestVBScript_Chunks(t *testing.T) {
	got := VBScript(seq(101), Options{})
	if n := strings.Count(got, "\r\nbuf=buf"); n != 1 {
		t.Fatalf("got %d continuation assignments, want 1", n)
	}
	if !strings.HasSuffix(got, "&Chr(99)\r\nbuf=buf&Chr(100)") {
		t.Errorf("unexpected tail: %q", got[len(got)-40:])
	}
}

func TestVBApplication_Continuation(t *testing.T) {
	got := VBApplication(seq(82), Options{})
	if n := strings.Count(got, " _\r\n"); n != 1 {
		t.Fatalf("got %d continuations, want 1", n)
	}
	if !strings.Contains(got, ",80, _\r\n81)") {
		t.Errorf("continuation not after element 80: %q", got[len(got)-30:])
	}
}

var (
	escapeRe = regexp.MustCompile(`\\x([0-9a-f]{2})`)
	numRe    = regexp.MustCompile(`0x([0-9a-f]{2})`)
	masmRe   = regexp.MustCompile(`[ ,]0?([0-9a-f]{2})h`)
	chrRe    = regexp.MustCompile(`Chr\((\d+)\)`)
	arrayRe  = regexp.MustCompile(`Array\(([^)]*)\)`)
)

func decodeHex(t *testing.T, re *regexp.Regexp, s string) []byte {
	t.Helper()
	var out []byte
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			t.Fatalf("bad token %q: %v", m[0], err)
		}
		out = append(out, byte(v))
	}
	return out
}

func decodeDecimal(t *testing.T, fields []string) []byte {
	t.Helper()
	var out []byte
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			t.Fatalf("bad value %q: %v", f, err)
		}
		out = append(out, byte(v))
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 7, 8, 9, 15, 16, 17, 99, 100, 101, 160, 257} {
		buf := make([]byte, n)
		rng.Read(buf)
		for _, wrap := range []int{0, 10, 33, 120} {
			o := Options{Wrap: wrap}
			for _, s := range Styles() {
				if !s.HasLiteral() {
					continue
				}
				out, err := Format(s, buf, o)
				if err != nil {
					t.Fatalf("%v len=%d: %v", s, n, err)
				}

				var got []byte
				switch s {
				case StyleRuby, StyleC, StylePerl, StylePython, StyleBash:
					got = decodeHex(t, escapeRe, out)
				case StyleCSharp, StyleGolang, StyleRust, StyleNim, StyleJava:
					got = decodeHex(t, numRe, out)
				case StyleMASM:
					got = decodeHex(t, masmRe, out)
				case StyleVBScript:
					var fields []string
					for _, m := range chrRe.FindAllStringSubmatch(out, -1) {
						fields = append(fields, m[1])
					}
					got = decodeDecimal(t, fields)
				case StyleVBApplication:
					m := arrayRe.FindStringSubmatch(strings.ReplaceAll(out, " _\r\n", ""))
					got = decodeDecimal(t, strings.Split(m[1], ","))
				}

				if diff := cmp.Diff(buf, got); diff != "" {
					t.Errorf("%v len=%d wrap=%d round trip mismatch (-want +got):\n%s", s, n, wrap, diff)
				}
			}
		}
	}
}

func TestDeclaredCount(t *testing.T) {
	buf := seq(37)
	tests := []struct {
		style Style
		re    *regexp.Regexp
	}{
		{StyleCSharp, regexp.MustCompile(`new byte\[(\d+)\]`)},
		{StyleRust, regexp.MustCompile(`\[u8; (\d+)\]`)},
		{StyleNim, regexp.MustCompile(`array\[(\d+), byte\]`)},
	}
	for _, tt := range tests {
		out, err := Format(tt.style, buf, Options{})
		if err != nil {
			t.Fatal(err)
		}
		m := tt.re.FindStringSubmatch(out)
		if m == nil {
			t.Fatalf("%v: no count in %q", tt.style, out)
		}
		if m[1] != "37" {
			t.Errorf("%v: declared %s, want 37", tt.style, m[1])
		}
	}
}

func TestHexifyLineWidth(t *testing.T) {
	buf := seq(200)
	for _, wrap := range []int{16, 40, 60, 100} {
		out := Python(buf, Options{Wrap: wrap})
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		// Skip the header; every body line closes once it reaches the width,
		// so it overshoots by at most one token plus its delimiter.
		for _, line := range lines[1:] {
			if len(line) > wrap+len(`\xNN"`) {
				t.Errorf("wrap=%d: line %q has length %d", wrap, line, len(line))
			}
		}
	}
}

func TestToHex(t *testing.T) {
	if got := toHex([]byte{0x00, 0x7f, 0xff}, `\x`); got != `\x00\x7f\xff` {
		t.Errorf("toHex = %q", got)
	}
	if got := toHex(nil, `\x`); got != "" {
		t.Errorf("toHex(nil) = %q, want empty", got)
	}
}
