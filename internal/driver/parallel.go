package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"phix/internal/diag"
	"phix/internal/source"
)

// listPHPFiles возвращает отсортированный список всех *.php файлов в
// директории
func listPHPFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".php") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// RewriteDir rewrites every *.php file under dir in parallel. Each
// file gets its own stream and bag, so workers share nothing mutable;
// results land at the index of their file in the sorted discovery
// order. A file that fails with an I/O error becomes a result carrying
// the error as a diagnostic instead of aborting the whole run; only
// context cancellation stops it.
func RewriteDir(ctx context.Context, dir string, opts Options) ([]RewriteResult, error) {
	files, err := listPHPFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]RewriteResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				res, err := RewriteFile(gctx, path, opts)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					// файл не обработался — это диагностика файла, а
					// не провал всего прогона
					bag := diag.NewBag(opts.bagCap())
					bag.Add(diag.NewError(diag.IOError, source.Span{}, err.Error()))
					results[i] = RewriteResult{Path: path, Bag: bag}
					return nil
				}
				results[i] = *res
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
