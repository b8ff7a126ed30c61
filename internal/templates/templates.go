// Package templates holds the compiled-in HTML pages. The registry is
// built once on first use and read-only afterwards, so concurrent
// requests can render without locking.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"
)

//go:embed html/*.html
var files embed.FS

const (
	Base     = "base"
	Home     = "home"
	Error    = "error"
	NewPost  = "new_post"
	PostList = "post_list"
)

// Every page defines a "content" block slotted into the base layout.
// The home page additionally pulls in the post_list fragment.
var pages = map[string][]string{
	Home:    {"html/base.html", "html/home.html", "html/post_list.html"},
	Error:   {"html/base.html", "html/error.html"},
	NewPost: {"html/base.html", "html/new_post.html"},
}

type Registry struct {
	pages map[string]*template.Template
}

var (
	once     sync.Once
	registry *Registry
	buildErr error
)

// Load parses the embedded templates on the first call and returns the
// same registry afterwards.
func Load() (*Registry, error) {
	once.Do(func() {
		parsed := make(map[string]*template.Template, len(pages))
		for name, paths := range pages {
			t, err := template.ParseFS(files, paths...)
			if err != nil {
				buildErr = fmt.Errorf("parsing template %s: %w", name, err)
				return
			}
			parsed[name] = t
		}
		registry = &Registry{pages: parsed}
	})
	return registry, buildErr
}

// Render executes the named page into a buffer so an engine failure
// yields an error instead of a half-written response body.
func (r *Registry) Render(name string, data any) (string, error) {
	t, ok := r.pages[name]
	if !ok {
		return "", fmt.Errorf("no template named %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
