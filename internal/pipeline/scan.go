package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/namewright/internal/parser"
)

// ErrUnparsable is recorded on an [Item] whose name no recognizer accepts.
var ErrUnparsable = errors.New("no episode pattern matched")

// Item is the parse result for one input. Err is nil exactly when Info is set.
type Item struct {
	Input string // path or title as given
	Size  int64
	Info  parser.Info
	Err   error
}

// OK reports whether the item parsed.
func (it Item) OK() bool { return it.Err == nil }

// Scan parses every file path with up to workers goroutines. Results keep the
// order of files. An unparsable file records [ErrUnparsable] and never stops
// the batch; only a cancelled ctx returns an error.
func Scan(ctx context.Context, files []File, workers int) ([]Item, error) {
	items := make([]Item, len(files))
	for i, f := range files {
		items[i] = Item{Input: f.Path, Size: f.Size}
	}
	return items, parseAll(ctx, items, workers, parser.ParsePath)
}

// ScanTitles is [Scan] for bare release titles.
func ScanTitles(ctx context.Context, titles []string, workers int) ([]Item, error) {
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = Item{Input: t}
	}
	return items, parseAll(ctx, items, workers, parser.ParseTitle)
}

func parseAll(ctx context.Context, items []Item, workers int, parse func(string) (parser.Info, bool)) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns items[i]; no locking needed.
			info, ok := parse(items[i].Input)
			if !ok {
				items[i].Err = ErrUnparsable
				return nil
			}
			items[i].Info = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
