package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
	"github.com/xeonx/timeago"

	"github.com/deskhub-io/deskhub-console/internal/middleware"
	"github.com/deskhub-io/deskhub-console/internal/models"
	"github.com/deskhub-io/deskhub-console/internal/utils"
)

func init() {
	// "2 hours ago" rendering for createdAt columns.
	_ = pongo2.RegisterFilter("timeago", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var t time.Time
		switch v := in.Interface().(type) {
		case models.Time:
			t = v.Time
		case *models.Time:
			if v != nil {
				t = v.Time
			}
		case time.Time:
			t = v
		}
		if t.IsZero() {
			return pongo2.AsValue(""), nil
		}
		return pongo2.AsValue(timeago.English.Format(t)), nil
	})

	// Humanized byte counts for attachment sizes.
	_ = pongo2.RegisterFilter("filesize", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		size := in.Integer()
		if size < 1024 {
			return pongo2.AsValue(fmt.Sprintf("%d B", size)), nil
		}
		value := float64(size)
		units := []string{"KB", "MB", "GB", "TB"}
		unit := ""
		for _, unit = range units {
			value /= 1024
			if value < 1024 {
				break
			}
		}
		return pongo2.AsValue(fmt.Sprintf("%.1f %s", value, unit)), nil
	})

	// Sanitized markdown for descriptions and comments.
	_ = pongo2.RegisterFilter("markdown", func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsSafeValue(utils.RenderMarkdown(in.String())), nil
	})
}

// Renderer renders pongo2 templates, caching compiled templates outside
// debug mode.
type Renderer struct {
	Debug       bool
	TemplateDir string
	mu          sync.RWMutex
	cache       map[string]*pongo2.Template
}

// NewRenderer creates a pongo2 renderer rooted at templateDir.
func NewRenderer(templateDir string, debug bool) *Renderer {
	if templateDir == "" {
		templateDir = DefaultTemplateDir()
	}
	return &Renderer{
		Debug:       debug,
		TemplateDir: templateDir,
		cache:       make(map[string]*pongo2.Template),
	}
}

// DefaultTemplateDir resolves the repository's templates directory relative
// to this source file, which also makes package tests location-independent.
func DefaultTemplateDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "templates")
}

func (r *Renderer) instance(name string) (*pongo2.Template, error) {
	fullPath := filepath.Join(r.TemplateDir, name)

	if r.Debug {
		return pongo2.FromFile(fullPath)
	}

	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := pongo2.FromFile(fullPath)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.cache[name] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

// HTML renders a template with the session (when present) merged into the
// context under "Session".
func (r *Renderer) HTML(c *gin.Context, code int, name string, data gin.H) {
	ctx := make(pongo2.Context)
	for key, value := range data {
		ctx[key] = value
	}
	if sess, ok := middleware.GetSession(c); ok {
		ctx["Session"] = sess
		ctx["IsAdmin"] = sess.IsAdmin()
	}

	tmpl, err := r.instance(name)
	if err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := tmpl.ExecuteWriter(ctx, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
	}
}
