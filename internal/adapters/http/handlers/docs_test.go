package handlers

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedRoutes returns the "METHOD path" of every @Router line on the
// CatalogHandler methods in file, keyed by method name.
func annotatedRoutes(t *testing.T, file string) map[string]string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ParseComments)
	require.NoError(t, err)

	routes := map[string]string{}
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || fn.Doc == nil {
			continue
		}

		if m := routerAnnotation.FindStringSubmatch(fn.Doc.Text()); m != nil {
			routes[fn.Name.Name] = strings.ToUpper(m[2]) + " " + m[1]
		}
	}

	return routes
}

func TestCatalogHandler_EveryRouteIsAnnotated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewCatalogHandler(nil).RegisterCatalogRoutes(engine.Group("/api/v1"))

	annotated := annotatedRoutes(t, "catalog.go")

	served := engine.Routes()
	require.Len(t, served, 9)

	for _, r := range served {
		name := r.Handler[strings.LastIndex(r.Handler, ".")+1:]
		name = strings.TrimSuffix(name, "-fm")
		path := strings.ReplaceAll(r.Path, ":id", "{id}")

		assert.Equal(t, r.Method+" "+path, annotated[name], "handler %s", name)
	}
}
