package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/san-kum/refsheet/internal/catalog"
)

var (
	ErrUnknownTarget = errors.New("output: unknown target")
	ErrNotText       = errors.New("output: clipboard only accepts text")
	ErrNoClipboard   = errors.New("output: no clipboard available")
)

// Target receives a single rendered document. rel is the path the
// document would have under the output root.
type Target interface {
	Emit(rel string, data []byte, mime string) error
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the clipboard of the running desktop session.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// StdoutTarget writes documents as is, terminating text with a newline.
type StdoutTarget struct {
	W io.Writer
}

func (t StdoutTarget) Emit(_ string, data []byte, mime string) error {
	if _, err := t.W.Write(data); err != nil {
		return err
	}
	if isText(mime) && len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(t.W, "\n")
		return err
	}
	return nil
}

type ClipboardTarget struct {
	Clipboard Clipboard
}

func (t ClipboardTarget) Emit(_ string, data []byte, mime string) error {
	if !isText(mime) {
		return fmt.Errorf("%w: %s", ErrNotText, mime)
	}
	return t.Clipboard.WriteAll(string(data))
}

type FileTarget struct {
	Store *Store
}

func (t FileTarget) Emit(rel string, data []byte, _ string) error {
	return t.Store.Write(rel, data)
}

func isText(mime string) bool {
	return strings.HasPrefix(mime, "text/") || mime == MimeSVG
}

const (
	MimeSVG  = "image/svg+xml"
	MimeText = "text/plain"
	MimePNG  = "image/png"
)

// Env supplies what the targets write to.
type Env struct {
	Stdout    io.Writer
	Clipboard Clipboard
	Store     *Store
}

// Targets returns the target catalog: stdout, clipboard and file.
func Targets(env Env) *catalog.Catalog[Target] {
	c := catalog.New[Target]("target", ErrUnknownTarget)
	c.Register("stdout", StdoutTarget{W: env.Stdout})
	c.Register("clipboard", ClipboardTarget{Clipboard: env.Clipboard})
	c.Register("file", FileTarget{Store: env.Store})
	return c
}
