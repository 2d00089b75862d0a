package log

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// DefaultAccessFormat is the access log line used when none is configured.
const DefaultAccessFormat = "{method} {path} - {status} ({duration})"

// Tags accepted in an access log format.
const (
	TagMethod   = "method"
	TagPath     = "path"
	TagStatus   = "status"
	TagDuration = "duration"
	TagRemote   = "remote"
)

var accessTags = map[string]bool{
	TagMethod:   true,
	TagPath:     true,
	TagStatus:   true,
	TagDuration: true,
	TagRemote:   true,
}

// AccessEntry is one served HTTP request.
type AccessEntry struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
	Remote   string
}

// AccessFormatter renders AccessEntry values with a {tag} template.
type AccessFormatter struct {
	tmpl *fasttemplate.Template
}

// NewAccessFormatter compiles format. Unknown tags and unbalanced braces are
// rejected.
func NewAccessFormatter(format string) (*AccessFormatter, error) {
	tmpl, err := fasttemplate.NewTemplate(format, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("invalid access log format: %w", err)
	}

	var unknown []string
	tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if !accessTags[tag] {
			unknown = append(unknown, tag)
		}
		return 0, nil
	})
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown access log tags: %s", strings.Join(unknown, ", "))
	}

	return &AccessFormatter{tmpl: tmpl}, nil
}

// Format renders e.
func (f *AccessFormatter) Format(e AccessEntry) string {
	return f.tmpl.ExecuteString(map[string]interface{}{
		TagMethod:   e.Method,
		TagPath:     e.Path,
		TagStatus:   fmt.Sprintf("%d", e.Status),
		TagDuration: e.Duration.String(),
		TagRemote:   e.Remote,
	})
}

// Access logs e at info level.
func (f *AccessFormatter) Access(e AccessEntry) {
	Infof("%s", f.Format(e))
}
