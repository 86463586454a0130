package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Static serves files below a root directory for every unrouted GET or HEAD.
// Anything it does not serve falls through to gin's default 404.
type Static struct {
	fs http.FileSystem
}

func NewStatic(root string) *Static {
	return &Static{fs: gin.Dir(root, false)}
}

func (s *Static) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return
	}
	name, ok := s.resolve(c.Request.URL.Path)
	if !ok {
		return
	}
	f, err := s.fs.Open(name)
	if err != nil {
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// resolve maps a request path to a regular file, using index.html for
// directories.
func (s *Static) resolve(name string) (string, bool) {
	name = path.Clean("/" + name)
	if s.isFile(name) {
		return name, true
	}
	index := path.Join(name, "index.html")
	if s.isFile(index) {
		return index, true
	}
	return "", false
}

func (s *Static) isFile(name string) bool {
	f, err := s.fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
