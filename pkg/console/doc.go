// Package console reads typed values from a line-oriented input and writes
// coloured text to a terminal.
//
// A Console is bound to an io.Reader and an io.Writer, so it works the same
// against os.Stdin/os.Stdout and against buffers in tests:
//
//	c := console.New(os.Stdin, os.Stdout, console.WithLogger(log))
//	age, err := console.ReadIntLoop(c, "age: ")
//
// ReadString, ReadInt and ReadFloat make one attempt and return the parse
// error. The Loop variants prompt again until a line parses and fail only when
// the input is exhausted (ErrEOF). Rejected lines are logged at debug level.
//
// Color renders text through a lipgloss renderer; writers that are not
// terminals receive the plain text.
package console
