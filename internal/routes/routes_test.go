package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strings"
	"testing"

	_ "gamestore/docs"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var pathVar = regexp.MustCompile(`\{(\w+)(:[^}]*)?\}`)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Security []map[string][]string `json:"security"`
	} `json:"paths"`
}

func readSwagger(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func newTestRouter() *mux.Router {
	r := mux.NewRouter()
	InitRoutes(r, Handlers{}, nil, Limits{})
	return r
}

func TestSwaggerCoversEveryRoute(t *testing.T) {
	doc := readSwagger(t)
	router := newTestRouter()

	var routed []string
	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			// /swagger/ раздаётся без фильтра по методу
			return nil
		}
		for _, m := range methods {
			routed = append(routed, strings.ToLower(m)+" "+pathVar.ReplaceAllString(tpl, "{$1}"))
		}
		return nil
	})
	require.NoError(t, err)

	var documented []string
	for p, ops := range doc.Paths {
		for m := range ops {
			documented = append(documented, m+" "+p)
		}
	}
	sort.Strings(routed)
	sort.Strings(documented)
	assert.Equal(t, routed, documented)
}

func TestSecuredOperationsRequireToken(t *testing.T) {
	doc := readSwagger(t)
	router := newTestRouter()

	secured := 0
	for p, ops := range doc.Paths {
		for m, op := range ops {
			if len(op.Security) == 0 {
				continue
			}
			secured++
			url := pathVar.ReplaceAllString(p, "1")
			req := httptest.NewRequest(strings.ToUpper(m), url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", m, p)
		}
	}
	assert.Equal(t, 19, secured)
}
