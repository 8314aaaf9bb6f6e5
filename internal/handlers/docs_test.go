package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	gomock "go.uber.org/mock/gomock"
)

var definitionRef = regexp.MustCompile(`"\$ref":\s*"#/definitions/([^"]+)"`)

type apiDoc struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readAPIDoc(t *testing.T) (string, apiDoc) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc apiDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.NotEmpty(t, doc.Paths)
	return raw, doc
}

func servedRoutes(t *testing.T) map[string]bool {
	ctrl := gomock.NewController(t)
	h := &Handlers{
		AuthHandler:    NewMockAuthHandler(ctrl),
		MemberHandler:  NewMockMemberHandler(ctrl),
		SavingsHandler: NewMockSavingsHandler(ctrl),
		LoanHandler:    NewMockLoanHandler(ctrl),
		BudgetHandler:  NewMockBudgetHandler(ctrl),
		AdminHandler:   NewMockAdminHandler(ctrl),
		Sessions:       stubSessions{},
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	routes := make(map[string]bool)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		routes[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)
	return routes
}

func TestDocumentedRoutesAreServed(t *testing.T) {
	_, doc := readAPIDoc(t)
	routes := servedRoutes(t)

	for path, operations := range doc.Paths {
		for method := range operations {
			key := strings.ToUpper(method) + " " + path
			assert.True(t, routes[key], "documented route %s is not served", key)
		}
	}
}

func TestServedRoutesAreDocumented(t *testing.T) {
	_, doc := readAPIDoc(t)

	for route := range servedRoutes(t) {
		if strings.HasPrefix(route, "GET /swagger") {
			continue
		}
		parts := strings.SplitN(route, " ", 2)
		operations, ok := doc.Paths[parts[1]]
		if assert.True(t, ok, "route %s is missing from the API document", route) {
			_, ok = operations[strings.ToLower(parts[0])]
			assert.True(t, ok, "method of %s is missing from the API document", route)
		}
	}
}

func TestDocumentDefinitionsResolve(t *testing.T) {
	raw, doc := readAPIDoc(t)

	refs := definitionRef.FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		_, ok := doc.Definitions[ref[1]]
		assert.True(t, ok, "definition %s is referenced but not defined", ref[1])
	}
}
