package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pockets-budget/backend/internal/controllers/v1"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestProfile(t *testing.T, c v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProfileEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.ProfileCreateResponse
	test.DecodeResponse(t, &r, &a)

	return a.Data[0]
}

func (suite *TestSuiteStandard) TestProfilesDBFail() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{})

	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestProfilesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No profile with this ID", "6a463cc8-1938-474a-8aeb-0482b82ffb6f", http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/profiles", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			assert.Equal(t, tt.status, r.Code)
		})
	}

	// Existing profile
	path := createTestProfile(suite.T(), v1.ProfileEditable{}).Data.Links.Self
	r := test.Request(suite.T(), http.MethodOptions, path, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	// Payoff endpoints of an existing profile
	for _, endpoint := range []string{"plan", "comparison", "schedule", "advice"} {
		r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/%s", path, endpoint), "")
		assert.Equal(suite.T(), http.StatusNoContent, r.Code, endpoint)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"), endpoint)
	}
}

func (suite *TestSuiteStandard) TestProfilesCreate() {
	tests := []struct {
		name     string
		profiles []v1.ProfileEditable
		status   int
		errors   []string
	}{
		{
			"All successful",
			[]v1.ProfileEditable{
				{Name: "Household", MonthlyIncome: decimal.NewFromFloat(3250)},
				{Name: "Savings", Currency: "usd"},
			},
			http.StatusCreated,
			[]string{"", ""},
		},
		{
			"Duplicate name",
			[]v1.ProfileEditable{
				{Name: "Same"},
				{Name: "Same"},
			},
			http.StatusBadRequest,
			[]string{"", "the profile name must be unique"},
		},
		{
			"Invalid currency",
			[]v1.ProfileEditable{
				{Name: "Unknown money", Currency: "XYZ1"},
			},
			http.StatusBadRequest,
			[]string{"the currency must be an ISO 4217 currency code"},
		},
		{
			"Negative income",
			[]v1.ProfileEditable{
				{Name: "In debt", MonthlyIncome: decimal.NewFromFloat(-100)},
			},
			http.StatusBadRequest,
			[]string{"the monthly income must not be negative"},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.profiles)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileCreateResponse
			test.DecodeResponse(t, &r, &response)

			for i, p := range response.Data {
				if tt.errors[i] == "" {
					assert.Nil(t, p.Error)
					assert.Equal(t, tt.profiles[i].Name, p.Data.Name)
					continue
				}

				assert.Contains(t, *p.Error, tt.errors[i])
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesCreateBrokenJSON() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/profiles", `[{ "name": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProfilesCurrency() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	assert.Equal(suite.T(), "EUR", p.Data.Currency, "Currency must default to EUR")
	assert.Equal(suite.T(), "€", p.Data.CurrencySymbol)

	p = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Dollars", Currency: " usd "})
	assert.Equal(suite.T(), "USD", p.Data.Currency)
}

func (suite *TestSuiteStandard) TestProfilesLinks() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	self := fmt.Sprintf("http://example.com/v1/profiles/%s", p.Data.ID)

	assert.Equal(suite.T(), self, p.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/debts?profile=%s", p.Data.ID), p.Data.Links.Debts)
	assert.Equal(suite.T(), self+"/plan", p.Data.Links.Plan)
	assert.Equal(suite.T(), self+"/comparison", p.Data.Links.Comparison)
	assert.Equal(suite.T(), self+"/schedule", p.Data.Links.Schedule)
	assert.Equal(suite.T(), self+"/advice", p.Data.Links.Advice)
}

func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Note: "Shared"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Standard profile", p.Data.ID.String(), http.StatusOK},
		{"No profile with this ID", "f0db4cc7-0d86-4a1a-8dac-2ecb2ad6e1c2", http.StatusNotFound},
		{"Invalid UUID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Shared", response.Data.Note)
				return
			}

			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetFilter() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Household", Note: "Shared debts", Currency: "EUR"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Student life", Note: "", Currency: "USD"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Side business", Note: "Loans for the shop", Currency: "EUR"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency", "currency=EUR", 2},
		{"Currency lowercase", "currency=usd", 1},
		{"Name", "name=Student", 1},
		{"Empty note", "note=", 1},
		{"Note", "note=debts", 1},
		{"Search", "search=shop", 1},
		{"Search name and note", "search=s", 3},
		{"No match", "name=Nope", 0},
		{"Offset", "offset=1", 2},
		{"Limit", "limit=1", 1},
		{"Offset and limit", "offset=2&limit=2", 1},
		{"Limit all", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ProfileListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.len, re.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesPagination() {
	for i := 0; i < 7; i++ {
		_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: fmt.Sprintf("Profile %d", i)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles?offset=2&limit=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Pagination{Count: 3, Offset: 2, Limit: 3, Total: 7}, *response.Pagination)
	assert.Equal(suite.T(), "Profile 2", response.Data[0].Name)

	// Without a limit, 50 is used
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Before", Note: "Keep me", MonthlyIncome: decimal.NewFromFloat(2000)})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, p v1.Profile)
	}{
		{
			"Name",
			map[string]any{"name": "After"},
			http.StatusOK,
			func(t *testing.T, p v1.Profile) {
				assert.Equal(t, "After", p.Name)
				assert.Equal(t, "Keep me", p.Note)
			},
		},
		{
			"Income",
			map[string]any{"monthlyIncome": "3100.50"},
			http.StatusOK,
			func(t *testing.T, p v1.Profile) {
				assert.True(t, p.MonthlyIncome.Equal(decimal.NewFromFloat(3100.50)), p.MonthlyIncome.String())
			},
		},
		{
			"Reset note",
			map[string]any{"note": ""},
			http.StatusOK,
			func(t *testing.T, p v1.Profile) {
				assert.Equal(t, "", p.Note)
			},
		},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"Negative income", map[string]any{"monthlyIncome": "-1"}, http.StatusBadRequest, nil},
		{"Invalid currency", map[string]any{"currency": "ABCD"}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, p.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdateNonExisting() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/profiles/a29bd123-beec-47de-a9cd-b6f7483fe00f", `{ "name": "Nope" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfilesDelete() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	d := createTestDebt(suite.T(), v1.DebtEditable{ProfileID: p.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Debts of the profile are deleted with it
	r = test.Request(suite.T(), http.MethodGet, d.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting again fails
	r = test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
