package regex

import (
	"fmt"
	"strings"
)

// Template names a validation pattern.
type Template int

const (
	IP Template = iota
	Port
	DatabaseName
	FileNameValid // no characters forbidden in file names
	ExtraStrongPassword
	URL
	Email
	USName
	OnlyLetters
	OnlyLowerLetters
	OnlyUpperLetters
	OnlyNumbers
	NumberWithDots
	OnlySpecialChars
	WithoutSpecialChars
	HexValue
	RomanNumerals
)

var templatePatterns = map[Template]string{
	IP:                  `^([1-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])(\.([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])){3}$`,
	Port:                `(^(6553[0-5]|655[0-2][0-9]|65[0-4][0-9][0-9]|6[0-4][0-9][0-9][0-9]|[1-9][0-9][0-9][0-9]|[1-9][0-9][0-9]|[1-9][0-9]|[1-9])$)`,
	DatabaseName:        `^([a-zA-Z0-9_]{1,30})$`,
	FileNameValid:       `^[^<>|:?*\\/"]*$`,
	ExtraStrongPassword: `(?!^[0-9]*$)(?!^[a-zA-Z]*$)^([a-zA-Z0-9]{8,})$`,
	URL:                 `^(ht|f)tp(s?)\:\/\/[0-9a-zA-Z]([-.\w]*[0-9a-zA-Z])*(:(0-9)*)*(\/?)([a-zA-Z0-9\-\.\?\,\'\/\\\+&amp;%\$#_]*)?$`,
	Email:               `^(?(")(".+?"@)|(([0-9a-zA-Z]((\.(?!\.))|[-!#\$%&'\*\+/=\?\^` + "`" + `\{\}\|~\w])*)(?<=[0-9a-zA-Z])@))(?(\[)(\[(\d{1,3}\.){3}\d{1,3}\])|(([0-9a-zA-Z][-\w]*[0-9a-zA-Z]\.)+[a-zA-Z]{2,6}))$`,
	USName:              `^[a-zA-Z''-'\s]{1,40}$`,
	OnlyLetters:         `^[a-zA-Z]*$`,
	OnlyLowerLetters:    `^[a-z]*$`,
	OnlyUpperLetters:    `^[A-Z]*$`,
	OnlyNumbers:         `^[0-9]*$`,
	NumberWithDots:      `^[0-9\.]*$`,
	OnlySpecialChars:    `^[^a-z^A-Z^0-9]*$`,
	WithoutSpecialChars: `^[a-zA-Z0-9]*$`,
	HexValue:            `^[A-Fa-f0-9]*$`,
	RomanNumerals:       `^m*(d?c{0,3}|c[dm])(l?x{0,3}|x[lc])(v?i{0,3}|i[vx])$`,
}

var templateNames = []string{
	"ip", "port", "database-name", "file-name", "extra-strong-password",
	"url", "email", "us-name", "only-letters", "only-lower", "only-upper",
	"only-numbers", "number-with-dots", "only-special", "without-special",
	"hex", "roman",
}

func (t Template) String() string {
	if t >= 0 && int(t) < len(templateNames) {
		return templateNames[t]
	}
	return fmt.Sprintf("Template(%d)", int(t))
}

// Pattern returns the expression behind t.
func (t Template) Pattern() (string, bool) {
	p, ok := templatePatterns[t]
	return p, ok
}

// Templates lists every template.
func Templates() []Template {
	out := make([]Template, len(templateNames))
	for i := range out {
		out[i] = Template(i)
	}
	return out
}

// ParseTemplate resolves a name returned by Template.String.
func ParseTemplate(name string) (Template, error) {
	i, err := lookup(templateNames, name)
	return Template(i), err
}

// Modification names a rewrite applied by Modify.
type Modification int

const (
	AddSlashes           Modification = iota // escape \0, \b, \t, \n, \r, \x1a, quotes, backslash and backtick
	RemoveSlashes                            // undo AddSlashes
	RemoveTabs                               // drop \t
	RemoveLineFeed                           // drop \n
	RemoveCarriageReturn                     // drop \r
	RemoveNewLines                           // drop \n and \r
	RemoveHTMLTags                           // drop everything between < and >
	JoinLines                                // fold lines and the white space around them into one space
)

type rewrite struct {
	pattern     string
	replacement string
}

const escapable = `\x00\x08\x09\x0A\x0D\x1A\x22\x27\x5C\x60`

var modifications = map[Modification]rewrite{
	AddSlashes:           {pattern: `[` + escapable + `]`, replacement: `\$0`},
	RemoveSlashes:        {pattern: `(\\)([` + escapable + `])`, replacement: `$2`},
	RemoveTabs:           {pattern: `[\t]`},
	RemoveLineFeed:       {pattern: `[\n]`},
	RemoveCarriageReturn: {pattern: `[\r]`},
	RemoveNewLines:       {pattern: `[\n\r]`},
	RemoveHTMLTags:       {pattern: `<.*?>`},
	JoinLines:            {pattern: `\s*\r?\n\s*`, replacement: " "},
}

var modificationNames = []string{
	"add-slashes", "remove-slashes", "remove-tabs", "remove-lf",
	"remove-cr", "remove-newlines", "remove-html", "join-lines",
}

func (m Modification) String() string {
	if m >= 0 && int(m) < len(modificationNames) {
		return modificationNames[m]
	}
	return fmt.Sprintf("Modification(%d)", int(m))
}

// Modifications returns every Modification in declaration order.
func Modifications() []Modification {
	out := make([]Modification, len(modificationNames))
	for i := range out {
		out[i] = Modification(i)
	}
	return out
}

// ParseModification resolves a name returned by Modification.String.
func ParseModification(name string) (Modification, error) {
	i, err := lookup(modificationNames, name)
	return Modification(i), err
}

// Extraction names a pattern scanned for by Extract.
type Extraction int

const (
	BinaryBytes      Extraction = iota // runs of eight 0/1 digits
	YouTubeID                          // video ids from youtube.com and youtu.be links
	CapsWords                          // words written in capitals only
	LowercaseWords                     // words written in lowercase only
	InitialCapsWords                   // capitalized words
	Numbers                            // integers and decimals
)

var extractions = map[Extraction]string{
	BinaryBytes:      `[01]{8}`,
	YouTubeID:        `(?<=v(\=|\/))([-a-zA-Z0-9_]+)|(?<=youtu\.be\/)([-a-zA-Z0-9_]+)`,
	CapsWords:        `(\b[^\Wa-z0-9_]+\b)`,
	LowercaseWords:   `(\b[^\WA-Z0-9_]+\b)`,
	InitialCapsWords: `(\b[^\Wa-z0-9_][^\WA-Z0-9_]*\b)`,
	Numbers:          `(\d+\.?\d*|\.\d+)`,
}

var extractionNames = []string{
	"binary-bytes", "youtube-id", "caps-words", "lowercase-words",
	"initial-caps", "numbers",
}

func (x Extraction) String() string {
	if x >= 0 && int(x) < len(extractionNames) {
		return extractionNames[x]
	}
	return fmt.Sprintf("Extraction(%d)", int(x))
}

// Extractions returns every Extraction in declaration order.
func Extractions() []Extraction {
	out := make([]Extraction, len(extractionNames))
	for i := range out {
		out[i] = Extraction(i)
	}
	return out
}

// ParseExtraction resolves a name returned by Extraction.String.
func ParseExtraction(name string) (Extraction, error) {
	i, err := lookup(extractionNames, name)
	return Extraction(i), err
}

func lookup(names []string, name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}
