package v1_test

import (
	"net/http"
	"testing"

	"github.com/pockets-budget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/profiles", "OPTIONS, GET, POST"},
		{"http://example.com/v1/debts", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}
