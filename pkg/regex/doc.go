// Package regex validates, rewrites and scans text with a fixed set of named
// patterns, and runs ad hoc patterns through a small compile cache.
//
// Patterns use .NET syntax and are evaluated by github.com/dlclark/regexp2,
// which supports the look-behind and conditional groups several templates
// rely on (Email, YouTubeID).
//
// # Templates
//
// Match checks a whole string against a Template:
//
//	ok, err := regex.Match("192.168.0.1", regex.IP)
//	if regex.IsMatch(pass, regex.ExtraStrongPassword) { ... }
//
// Modify applies one of the Modification rewrites, and Extract returns every
// occurrence of an Extraction in the order found:
//
//	clean, _ := regex.Modify("<b>bold</b>", regex.RemoveHTMLTags) // "bold"
//	ids, _ := regex.Extract(html, regex.YouTubeID)
//
// # Engines
//
// The package level functions share a default Engine. Create your own with
// New to control the cache capacity or the default match timeout:
//
//	eng := regex.New(regex.WithCacheSize(64), regex.WithDefaultTimeout(time.Second))
//	words, err := eng.FindAll(text, `\b\w{5}\b`, regex.IgnoreCase())
//
// Invalid patterns fail with ErrInvalidPattern. A match that exceeds its
// timeout fails with ErrTimeout, classified as fault.ErrOutOfRange.
package regex
