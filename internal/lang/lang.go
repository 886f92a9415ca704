package lang

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	javaDefaultName = "shell"
	masmDefaultName = "shellcode"

	// javaPerLine and masmPerLine are the number of bytes per body line for
	// the styles that group by count instead of width.
	javaPerLine = 8
	masmPerLine = 8

	// vbsChunk starts a new VBScript assignment every this many bytes, keeping
	// each expression under the interpreter's line limits.
	vbsChunk = 100

	// vbaChunk inserts a line continuation every this many array elements.
	vbaChunk = 80
)

// Ruby renders buf as a concatenation of double-quoted strings.
func Ruby(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return hexify(buf, o.wrap(), layout{
		header:    name + " = \n",
		lineStart: `"`,
		lineEnd:   `" +`,
		footer:    `"`,
	})
}

// C renders buf as an unsigned char array initialized from adjacent string literals.
func C(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return hexify(buf, o.wrap(), layout{
		header:    "unsigned char " + name + "[] = \n",
		lineStart: `"`,
		lineEnd:   `"`,
		footer:    `";`,
	})
}

// CSharp renders buf as a sized byte array initializer.
func CSharp(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return numhexify(buf, o.wrap(), layout{
		header:  "byte[] " + name + " = new byte[" + strconv.Itoa(len(buf)) + "] {",
		footer:  "};",
		between: ",",
	})
}

// Golang renders buf as a byte slice literal whose length is inferred.
func Golang(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return numhexify(buf, o.wrap(), layout{
		header:  name + " :=  []byte{",
		footer:  "};",
		between: ",",
	})
}

// Rust renders buf as a fixed-size u8 array.
func Rust(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return numhexify(buf, o.wrap(), layout{
		header:  "let " + name + ": [u8; " + strconv.Itoa(len(buf)) + "] = [",
		footer:  "];",
		between: ",",
	})
}

// Nim renders buf as a fixed-size byte array. Nim has no empty array literal
// of this form, so an empty buffer fails with ErrEmptyInput.
func Nim(buf []byte, o Options) (string, error) {
	if len(buf) == 0 {
		return "", fmt.Errorf("%w: nim", ErrEmptyInput)
	}
	name := o.nameOr(DefaultName)
	return numhexify(buf, o.wrap(), layout{
		header:  "var " + name + ": array[" + strconv.Itoa(len(buf)) + ", byte] = [\nbyte ",
		footer:  "]",
		between: ",",
	}), nil
}

// Perl renders buf as a concatenation of double-quoted strings.
func Perl(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return hexify(buf, o.wrap(), layout{
		header:    "my $" + name + " = \n",
		lineStart: `"`,
		lineEnd:   `" .`,
		footer:    `";`,
	})
}

// Python renders buf as an empty bytes object extended one line at a time.
func Python(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return hexify(buf, o.wrap(), layout{
		header:    name + " =  b\"\"\n",
		lineStart: name + ` += b"`,
		lineEnd:   `"`,
		footer:    `"`,
	})
}

// Bash renders buf as an exported ANSI-C quoted string with line continuations.
func Bash(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	return hexify(buf, o.wrap(), layout{
		header:    "export " + name + "=\\\n",
		lineStart: `$'`,
		lineEnd:   `'\`,
		footer:    `'`,
	})
}

// MASM renders buf as DB directives of eight bytes each, labelled with the
// variable name (shellcode by default). Hex tokens starting with a letter get
// a leading zero so the assembler reads them as numbers. Options.Wrap is
// ignored. An empty buffer fails with ErrEmptyInput.
func MASM(buf []byte, o Options) (string, error) {
	if len(buf) == 0 {
		return "", fmt.Errorf("%w: masm", ErrEmptyInput)
	}
	digits := toHex(buf, "")

	var sb strings.Builder
	sb.Grow(len(buf)*5 + len(buf)/masmPerLine*4 + 16)
	sb.WriteString(o.nameOr(masmDefaultName))
	sb.WriteByte(' ')
	for i := range buf {
		if i%masmPerLine == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString("DB ")
		} else {
			sb.WriteByte(',')
		}
		hi := digits[2*i]
		if hi >= 'a' {
			sb.WriteByte('0')
		}
		sb.WriteByte(hi)
		sb.WriteByte(digits[2*i+1])
		sb.WriteByte('h')
	}
	sb.WriteByte('\n')
	return sb.String(), nil
}

// Java renders buf as a byte array with explicit casts, eight per line.
// Options.Wrap is ignored and the default name is "shell".
func Java(buf []byte, o Options) string {
	var sb strings.Builder
	sb.Grow(len(buf)*13 + 32)
	sb.WriteString("byte " + o.nameOr(javaDefaultName) + "[] = new byte[]\n{\n")
	last := len(buf) - 1
	for i, b := range buf {
		col := i % javaPerLine
		if col == 0 {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString("(byte) 0x")
		appendHex(&sb, b)
		if col == javaPerLine-1 && i != last {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString("\n};\n")
	return sb.String()
}

// VBScript renders buf as a string built from Chr() calls. An empty buffer
// yields the bare variable name.
func VBScript(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	if len(buf) == 0 {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(buf)*9 + len(buf)/vbsChunk*(len(name)*2+3) + len(name) + 8)
	sb.WriteString(name + "=Chr(" + decimal(buf[0]) + ")")
	for i := 1; i < len(buf); i++ {
		if i%vbsChunk == 0 {
			sb.WriteString("\r\n" + name + "=" + name)
		}
		sb.WriteString("&Chr(" + decimal(buf[i]) + ")")
	}
	return sb.String()
}

// VBApplication renders buf as a VBA Array() of decimal values. An empty
// buffer yields an empty Array() assignment.
func VBApplication(buf []byte, o Options) string {
	name := o.nameOr(DefaultName)
	if len(buf) == 0 {
		return name + " = Array()"
	}

	var sb strings.Builder
	sb.Grow(len(buf)*4 + len(buf)/vbaChunk*4 + len(name) + 16)
	sb.WriteString(name + " = Array(")
	last := len(buf) - 1
	for i, b := range buf {
		sb.WriteString(decimal(b))
		if i < last {
			sb.WriteByte(',')
		}
		if i > 1 && i%vbaChunk == 0 {
			sb.WriteString(" _\r\n")
		}
	}
	sb.WriteString(")\r\n")
	return sb.String()
}

// RubyComment renders text as # comment lines.
func RubyComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "# ")
}

// CComment renders text as a /* */ block with leading asterisks.
func CComment(text string, wrap int) string {
	return blockComment("/*\n", text, wrap, " * ", " */\n")
}

// GolangComment renders text as a bare /* */ block.
func GolangComment(text string, wrap int) string {
	return blockComment("/*\n", text, wrap, "", "*/\n")
}

// MASMComment renders text as ; comment lines.
func MASMComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "; ")
}

// NimComment renders text as a #[ ]# block.
func NimComment(text string, wrap int) string {
	return blockComment("#[\n", text, wrap, "", "]#\n")
}

// RustComment renders text as a /* */ block with leading asterisks.
func RustComment(text string, wrap int) string {
	return blockComment("/*\n", text, wrap, " * ", " */\n")
}

// JSComment renders text as // comment lines.
func JSComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "// ")
}

// JavaComment renders text as // comment lines.
func JavaComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "// ")
}

// CSharpComment renders text as // comment lines.
func CSharpComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "// ")
}

// PerlComment renders text as # comment lines.
func PerlComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "# ")
}

// PythonComment renders text as # comment lines.
func PythonComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "# ")
}

// BashComment renders text as # comment lines.
func BashComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "# ")
}

// PowerShellComment renders text as # comment lines.
func PowerShellComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "# ")
}

// VBComment renders text as ' comment lines, shared by VBScript and VBA.
func VBComment(text string, wrap int) string {
	return wordwrap(text, 0, wrap, "", "' ")
}
