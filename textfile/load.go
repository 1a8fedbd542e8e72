package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/skiprope"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Fragment is a progress event published while a file is loading: one event
// per fragment appended to the rope.
type Fragment struct {
	Pos int64 // byte position of the fragment within the file
	Len int   // fragment length in bytes
}

// Load reads a file, which must be a UTF-8 text file, and loads it as a
// rope. Clients may indicate a recommended fragment length; 0 lets Load pick
// a sensible default from the file size.
func Load(name string, fragSize int64) (*skiprope.Rope, error) {
	ld, err := LoadAsync(name, fragSize)
	if err != nil {
		return nil, err
	}
	return ld.Wait()
}

// LoadAsync opens a file and starts loading it into a rope in the
// background. Opening is synchronous; reading is not. The returned loader
// owns the rope until Wait returns (the rope is single-writer).
func LoadAsync(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(fi.Size())
	}
	ld := &Loader{
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		done: make(chan struct{}),
		rope: skiprope.New(),
	}
	T().Debugf("loading %q in fragments of %d bytes", name, fragSize)
	go ld.run(file, fragSize)
	return ld, nil
}

// defaultFragSize picks a fragment length from the file size.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		if size == 0 {
			return 64
		}
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// Loader is an in-flight asynchronous file load.
type Loader struct {
	cast *caster.Caster
	done chan struct{}
	rope *skiprope.Rope
	err  error
}

// Sub subscribes to fragment-progress events. The returned channel carries
// Fragment values and is closed when loading completes. The boolean is false
// if the loader has already shut its broadcaster down.
func (ld *Loader) Sub(ctx context.Context) (<-chan interface{}, bool) {
	return ld.cast.Sub(ctx, 16)
}

// Wait blocks until the load has completed and returns the rope, handing the
// writer role to the caller.
func (ld *Loader) Wait() (*skiprope.Rope, error) {
	<-ld.done
	if ld.err != nil {
		return nil, ld.err
	}
	return ld.rope, nil
}

func (ld *Loader) run(file *os.File, fragSize int64) {
	defer close(ld.done)
	defer ld.cast.Close()
	defer file.Close()

	buf := make([]byte, fragSize+utf8.UTFMax)
	carry := 0 // trailing bytes of an incomplete rune from the previous read
	var pos int64
	for {
		n, err := file.Read(buf[carry : carry+int(fragSize)])
		if n > 0 {
			frag := buf[:carry+n]
			// Publish only up to the last complete rune; the remainder is
			// carried over into the next fragment.
			cut := lastBoundary(frag)
			if ierr := ld.rope.Insert(ld.rope.CharCount(), string(frag[:cut])); ierr != nil {
				ld.err = ierr
				return
			}
			ld.cast.Pub(Fragment{Pos: pos, Len: cut})
			pos += int64(cut)
			carry = copy(buf, frag[cut:])
		}
		if err == io.EOF {
			if carry > 0 {
				ld.err = fmt.Errorf("file ends inside a UTF-8 rune")
			}
			return
		}
		if err != nil {
			ld.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		}
	}
}

// lastBoundary returns the length of the longest prefix of frag that ends on
// a UTF-8 rune boundary.
func lastBoundary(frag []byte) int {
	end := len(frag)
	for i := 1; i <= utf8.UTFMax && i <= end; i++ {
		if utf8.RuneStart(frag[end-i]) {
			if utf8.FullRune(frag[end-i:]) {
				return end
			}
			return end - i
		}
	}
	return end
}
