package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// DefaultProgressStep is the number of words between two progress messages.
const DefaultProgressStep = 1000

// Options controls how words are collected.
type Options struct {
	FoldCase     bool // index words in lower case
	MinLength    int  // skip words with fewer runes
	ProgressStep int  // words between progress messages, 0 means DefaultProgressStep
}

// Progress is broadcast to subscribers of a Loader while a text is indexed.
// The last message for a text has Done set.
type Progress struct {
	Name  string // file name, empty for readers
	Words int    // words seen so far, including repetitions
	Bytes int64  // bytes consumed so far
	Done  bool
	Err   error // read error, if loading failed
}

// Loader indexes texts and reports progress to subscribers.
// A Loader must be closed after use to release its subscribers.
type Loader struct {
	opts Options
	cast *caster.Caster // broadcaster for progress messages
}

// NewLoader creates a loader. The zero value of Options indexes every word
// as it appears in the text.
func NewLoader(opts Options) *Loader {
	if opts.ProgressStep <= 0 {
		opts.ProgressStep = DefaultProgressStep
	}
	return &Loader{
		opts: opts,
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel of *Progress messages. The subscription ends
// when ctx is cancelled or the loader is closed. Subscribers must drain their
// channel, otherwise loading will stall once the channel's capacity is
// exhausted.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Close closes all subscriber channels. Loading after Close is permitted but
// will not be reported.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads a file, which must be a regular text file, and returns its word
// index. Errors from package os are wrapped and may be inspected with
// errors.Is.
func (l *Loader) Load(name string) (*ordmap.OrderedMap[string, int], error) {
	file, err := openFile(name)
	if err != nil {
		tracer().Errorf("textfile: %v", err)
		return nil, err
	}
	defer file.Close()
	return l.index(name, file)
}

// Index reads a text from r and returns its word index.
func (l *Loader) Index(r io.Reader) (*ordmap.OrderedMap[string, int], error) {
	return l.index("", r)
}

// Load reads a file with default options and without progress reports.
func Load(name string) (*ordmap.OrderedMap[string, int], error) {
	l := NewLoader(Options{})
	defer l.Close()
	return l.Load(name)
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	}
	return file, nil
}

func (l *Loader) index(name string, r io.Reader) (*ordmap.OrderedMap[string, int], error) {
	idx := ordmap.NewOrdered[string, int]()
	src := &errReader{r: r}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(src))
	var pos int // byte offset of current segment
	words := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		for off, w := range wordsIn(frag) {
			if utf8.RuneCountInString(w) < l.opts.MinLength {
				continue
			}
			if l.opts.FoldCase {
				w = strings.ToLower(w)
			}
			if found, _ := idx.Contains(w); !found {
				if err := idx.Put(w, pos+off); err != nil {
					return nil, err
				}
			}
			words++
			if words%l.opts.ProgressStep == 0 {
				l.cast.Pub(&Progress{Name: name, Words: words, Bytes: int64(pos + off + len(w))})
			}
		}
		pos += len(frag)
	}
	if src.err != nil {
		err := fmt.Errorf("textfile: reading %q at byte %d: %w", name, src.n, src.err)
		tracer().Errorf("%v", err)
		l.cast.Pub(&Progress{Name: name, Words: words, Bytes: src.n, Done: true, Err: err})
		return nil, err
	}
	tracer().Infof("textfile: indexed %d words (%d distinct) from %d bytes", words, idx.Size(), src.n)
	l.cast.Pub(&Progress{Name: name, Words: words, Bytes: src.n, Done: true})
	return idx, nil
}

// wordsIn yields every maximal run of letters and digits in s, together with
// its byte offset within s.
func wordsIn(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		start := -1
		for i, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(start, s[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(start, s[start:])
		}
	}
}

// errReader counts bytes and remembers the first error other than io.EOF,
// as the segmenter treats every read error as end of input.
type errReader struct {
	r   io.Reader
	n   int64
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	er.n += int64(n)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}
