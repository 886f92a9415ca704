package lang

import (
	"fmt"
	"strings"
)

// Style identifies a target-language literal convention.
type Style int

const (
	StyleRuby Style = iota
	StyleC
	StyleCSharp
	StyleGolang
	StyleMASM
	StyleNim
	StyleRust
	StylePerl
	StylePython
	StyleBash
	StyleJava
	StyleVBScript
	StyleVBApplication
	StyleJavaScript // comment only
	StylePowerShell // comment only
	numStyles
)

// styleInfo is the registry entry for a style.
type styleInfo struct {
	name        string
	aliases     []string
	defaultName string
	literal     func(buf []byte, o Options) (string, error)
	comment     func(text string, wrap int) string
}

// total adapts a formatter that cannot fail to the registry signature.
func total(f func([]byte, Options) string) func([]byte, Options) (string, error) {
	return func(buf []byte, o Options) (string, error) {
		return f(buf, o), nil
	}
}

var registry = [numStyles]styleInfo{
	StyleRuby:          {name: "ruby", aliases: []string{"rb"}, defaultName: DefaultName, literal: total(Ruby), comment: RubyComment},
	StyleC:             {name: "c", defaultName: DefaultName, literal: total(C), comment: CComment},
	StyleCSharp:        {name: "csharp", aliases: []string{"cs", "c#"}, defaultName: DefaultName, literal: total(CSharp), comment: CSharpComment},
	StyleGolang:        {name: "golang", aliases: []string{"go"}, defaultName: DefaultName, literal: total(Golang), comment: GolangComment},
	StyleMASM:          {name: "masm", aliases: []string{"asm"}, defaultName: masmDefaultName, literal: MASM, comment: MASMComment},
	StyleNim:           {name: "nim", defaultName: DefaultName, literal: Nim, comment: NimComment},
	StyleRust:          {name: "rust", aliases: []string{"rs"}, defaultName: DefaultName, literal: total(Rust), comment: RustComment},
	StylePerl:          {name: "perl", aliases: []string{"pl"}, defaultName: DefaultName, literal: total(Perl), comment: PerlComment},
	StylePython:        {name: "python", aliases: []string{"py"}, defaultName: DefaultName, literal: total(Python), comment: PythonComment},
	StyleBash:          {name: "bash", aliases: []string{"sh"}, defaultName: DefaultName, literal: total(Bash), comment: BashComment},
	StyleJava:          {name: "java", defaultName: javaDefaultName, literal: total(Java), comment: JavaComment},
	StyleVBScript:      {name: "vbscript", aliases: []string{"vbs"}, defaultName: DefaultName, literal: total(VBScript), comment: VBComment},
	StyleVBApplication: {name: "vbapplication", aliases: []string{"vba"}, defaultName: DefaultName, literal: total(VBApplication), comment: VBComment},
	StyleJavaScript:    {name: "js", aliases: []string{"javascript"}, comment: JSComment},
	StylePowerShell:    {name: "powershell", aliases: []string{"psh", "ps1"}, comment: PowerShellComment},
}

var byName = func() map[string]Style {
	m := make(map[string]Style, int(numStyles)*2)
	for s := Style(0); s < numStyles; s++ {
		m[registry[s].name] = s
		for _, a := range registry[s].aliases {
			m[a] = s
		}
	}
	return m
}()

func (s Style) valid() bool {
	return s >= 0 && s < numStyles
}

// String returns the canonical style name.
func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return registry[s].name
}

// HasLiteral reports whether the style can render a byte buffer.
func (s Style) HasLiteral() bool {
	return s.valid() && registry[s].literal != nil
}

// DefaultName returns the variable name the style uses when Options.Name is empty.
// Comment-only styles return "".
func (s Style) DefaultName() string {
	if !s.valid() {
		return ""
	}
	return registry[s].defaultName
}

// ParseStyle resolves a canonical style name or alias, case-insensitively.
func ParseStyle(name string) (Style, error) {
	s, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// Styles returns every registered style in declaration order.
func Styles() []Style {
	out := make([]Style, numStyles)
	for i := range out {
		out[i] = Style(i)
	}
	return out
}

// Format renders buf in the given style.
func Format(s Style, buf []byte, o Options) (string, error) {
	if !s.valid() {
		return "", fmt.Errorf("%w: %v", ErrUnknownStyle, s)
	}
	info := registry[s]
	if info.literal == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, info.name)
	}
	return info.literal(buf, o)
}

// Comment renders text as a comment in the given style. Every registered
// style has a comment form.
func Comment(s Style, text string, wrap int) (string, error) {
	if !s.valid() {
		return "", fmt.Errorf("%w: %v", ErrUnknownStyle, s)
	}
	return registry[s].comment(text, wrap), nil
}
