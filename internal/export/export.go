// Package export writes the site as static HTML files.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/loke-dev/mdx-blog/pkg/server"
)

// NotFoundFile is the page static hosts serve for unknown paths
const NotFoundFile = "404.html"

// notFoundPath is requested to render the 404 page; it matches no route
const notFoundPath = "/404.html"

// File is one written output file
type File struct {
	Path string // relative to the output directory, slash separated
	Size int64
}

// Export renders every parameter-free route of router to
// <outDir>/<route>/index.html plus the 404 page, and returns the files
// written in route order.
func Export(ctx context.Context, router *server.Router, outDir string) ([]File, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var files []File
	for _, route := range router.ExportTable() {
		if !route.Static() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return files, err
		}

		body, err := render(ctx, router, route.Path, http.StatusOK)
		if err != nil {
			return files, err
		}

		rel := pageFile(route.Path)
		if err := write(outDir, rel, body); err != nil {
			return files, err
		}
		files = append(files, File{Path: rel, Size: int64(len(body))})
	}

	if err := ctx.Err(); err != nil {
		return files, err
	}
	body, err := render(ctx, router, notFoundPath, http.StatusNotFound)
	if err != nil {
		return files, err
	}
	if err := write(outDir, NotFoundFile, body); err != nil {
		return files, err
	}
	files = append(files, File{Path: NotFoundFile, Size: int64(len(body))})

	return files, nil
}

// CopyStatic copies srcDir into <outDir>/static
func CopyStatic(ctx context.Context, srcDir, outDir string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		input, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		dest := filepath.ToSlash(filepath.Join("static", rel))
		if err := write(outDir, dest, input); err != nil {
			return err
		}
		files = append(files, File{Path: dest, Size: int64(len(input))})
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("copy static files: %w", err)
	}
	return files, nil
}

func render(ctx context.Context, router *server.Router, path string, want int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != want {
		return nil, fmt.Errorf("render %s: status %d, want %d", path, rec.Code, want)
	}
	return rec.Body.Bytes(), nil
}

// pageFile maps a route path to its index.html
func pageFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}

func write(outDir, rel string, data []byte) error {
	dest := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// FormatSize renders a byte count for humans
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
