package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pockets-budget/backend/internal/controllers/v1"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/internal/payoff"
	"github.com/pockets-budget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestDebt creates a debt. Unset values are filled with defaults
// that pass validation, without a profile ID a new profile is created.
func createTestDebt(t *testing.T, c v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	if c.ProfileID == uuid.Nil {
		c.ProfileID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.TotalAmount.IsZero() {
		c.TotalAmount = decimal.NewFromFloat(3000)
	}

	if c.CurrentBalance.IsZero() {
		c.CurrentBalance = decimal.NewFromFloat(2000)
	}

	if c.MinimumPayment.IsZero() {
		c.MinimumPayment = decimal.NewFromFloat(50)
	}

	if c.MonthlyPayment.IsZero() {
		c.MonthlyPayment = decimal.NewFromFloat(100)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.DebtEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.DebtCreateResponse
	test.DecodeResponse(t, &r, &a)

	return a.Data[0]
}

func (suite *TestSuiteStandard) TestDebtsDBFail() {
	_ = createTestDebt(suite.T(), v1.DebtEditable{})

	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/debts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestDebtsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No debt with this ID", "6a463cc8-1938-474a-8aeb-0482b82ffb6f", http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/debts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			assert.Equal(t, tt.status, r.Code)
		})
	}

	path := createTestDebt(suite.T(), v1.DebtEditable{}).Data.Links.Self
	r := test.Request(suite.T(), http.MethodOptions, path, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDebtsCreate() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	valid := func(name string) v1.DebtEditable {
		return v1.DebtEditable{
			ProfileID:      profile.Data.ID,
			Name:           name,
			Type:           payoff.CreditCard,
			TotalAmount:    decimal.NewFromFloat(3000),
			CurrentBalance: decimal.NewFromFloat(2450.17),
			InterestRate:   decimal.NewFromFloat(19.9),
			MinimumPayment: decimal.NewFromFloat(60),
			MonthlyPayment: decimal.NewFromFloat(120),
		}
	}

	tests := []struct {
		name   string
		modify func(d *v1.DebtEditable)
		status int
		err    string
	}{
		{"Valid", func(_ *v1.DebtEditable) {}, http.StatusCreated, ""},
		{"Type defaults to other", func(d *v1.DebtEditable) { d.Type = "" }, http.StatusCreated, ""},
		{"No interest", func(d *v1.DebtEditable) { d.InterestRate = decimal.Zero }, http.StatusCreated, ""},
		{"Paid off", func(d *v1.DebtEditable) { d.CurrentBalance = decimal.Zero }, http.StatusCreated, ""},
		{"Invalid type", func(d *v1.DebtEditable) { d.Type = "loan_shark" }, http.StatusBadRequest, "the debt type is not valid"},
		{"Total amount zero", func(d *v1.DebtEditable) { d.TotalAmount = decimal.Zero }, http.StatusBadRequest, "the total amount must be larger than zero"},
		{"Negative balance", func(d *v1.DebtEditable) { d.CurrentBalance = decimal.NewFromFloat(-1) }, http.StatusBadRequest, "the current balance must not be negative"},
		{"Balance above total", func(d *v1.DebtEditable) { d.CurrentBalance = decimal.NewFromFloat(3000.01) }, http.StatusBadRequest, "the current balance must not be larger than the total amount"},
		{"Negative rate", func(d *v1.DebtEditable) { d.InterestRate = decimal.NewFromFloat(-0.5) }, http.StatusBadRequest, "the interest rate must not be negative"},
		{"Minimum payment zero", func(d *v1.DebtEditable) { d.MinimumPayment = decimal.Zero }, http.StatusBadRequest, "the minimum payment must be larger than zero"},
		{"Payment below minimum", func(d *v1.DebtEditable) { d.MonthlyPayment = decimal.NewFromFloat(59.99) }, http.StatusBadRequest, "the monthly payment must not be lower than the minimum payment"},
		{"No profile", func(d *v1.DebtEditable) { d.ProfileID = uuid.New() }, http.StatusNotFound, "there is no profile matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			d := valid(tt.name)
			tt.modify(&d)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", []v1.DebtEditable{d})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DebtCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err == "" {
				assert.Nil(t, response.Data[0].Error)
				assert.Equal(t, tt.name, response.Data[0].Data.Name)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsCreateTypeDefault() {
	d := createTestDebt(suite.T(), v1.DebtEditable{})
	assert.Equal(suite.T(), payoff.Other, d.Data.Type)
}

func (suite *TestSuiteStandard) TestDebtsCreateDuplicateName() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: profile.Data.ID, Name: "Credit card"})

	d := createTestDebt(suite.T(), v1.DebtEditable{ProfileID: profile.Data.ID, Name: "Credit card"}, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrDebtNameNotUnique.Error(), *d.Error)

	// The same name is fine for a different profile
	_ = createTestDebt(suite.T(), v1.DebtEditable{Name: "Credit card"})
}

func (suite *TestSuiteStandard) TestDebtsCreateBrokenJSON() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", `[{ "name": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDebtsComputedFields() {
	tests := []struct {
		name          string
		balance       float64
		rate          float64
		payment       float64
		months        int
		totalInterest float64
	}{
		{"No interest", 1200, 0, 100, 12, 0},
		{"With interest", 1000, 24, 50, 26, 300},
		{"Never paid off", 2500, 24, 50, -1, 0},
		{"Paid off", 0, 10, 50, 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			d := createTestDebt(t, v1.DebtEditable{
				TotalAmount:    decimal.NewFromFloat(3000),
				CurrentBalance: decimal.NewFromFloat(tt.balance),
				InterestRate:   decimal.NewFromFloat(tt.rate),
				MinimumPayment: decimal.NewFromFloat(tt.payment),
				MonthlyPayment: decimal.NewFromFloat(tt.payment),
			})

			// A zero balance is replaced by the helper, set it explicitly
			if tt.balance == 0 {
				r := test.Request(t, http.MethodPatch, d.Data.Links.Self, map[string]any{"currentBalance": "0"})
				test.AssertHTTPStatus(t, &r, http.StatusOK)
				test.DecodeResponse(t, &r, &d)
			}

			assert.Equal(t, tt.months, d.Data.PayoffMonths)
			assert.True(t, d.Data.TotalInterest.Equal(decimal.NewFromFloat(tt.totalInterest)), "total interest is %s", d.Data.TotalInterest)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsLinks() {
	d := createTestDebt(suite.T(), v1.DebtEditable{})

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/debts/%s", d.Data.ID), d.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s", d.Data.ProfileID), d.Data.Links.Profile)
}

func (suite *TestSuiteStandard) TestDebtsGetSingle() {
	d := createTestDebt(suite.T(), v1.DebtEditable{Note: "The one with the cashback"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Standard debt", d.Data.ID.String(), http.StatusOK},
		{"No debt with this ID", "f0db4cc7-0d86-4a1a-8dac-2ecb2ad6e1c2", http.StatusNotFound},
		{"Invalid UUID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DebtResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "The one with the cashback", response.Data.Note)
				return
			}

			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsGetFilter() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{})

	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: p1.Data.ID, Name: "Visa card", Type: payoff.CreditCard, Note: "Cashback", Priority: 2})
	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: p1.Data.ID, Name: "Master card", Type: payoff.CreditCard, Priority: 1})
	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: p1.Data.ID, Name: "Car", Type: payoff.CarLoan, Note: "Red one", Archived: true})
	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: p2.Data.ID, Name: "Student loan", Type: payoff.StudentLoan})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All", "", []string{"Car", "Student loan", "Master card", "Visa card"}},
		{"Profile", fmt.Sprintf("profile=%s", p1.Data.ID), []string{"Car", "Master card", "Visa card"}},
		{"Other profile", fmt.Sprintf("profile=%s", p2.Data.ID), []string{"Student loan"}},
		{"Type", "type=credit_card", []string{"Master card", "Visa card"}},
		{"Archived", "archived=true", []string{"Car"}},
		{"Not archived", "archived=false", []string{"Student loan", "Master card", "Visa card"}},
		{"Name", "name=card", []string{"Master card", "Visa card"}},
		{"Empty note", "note=", []string{"Student loan", "Master card"}},
		{"Note", "note=cash", []string{"Visa card"}},
		{"Search", "search=red", []string{"Car"}},
		{"Match", "match=*card", []string{"Master card", "Visa card"}},
		{"Match prefix", "match=Ca*", []string{"Car"}},
		{"Match and profile", fmt.Sprintf("match=*&profile=%s", p2.Data.ID), []string{"Student loan"}},
		{"Match nothing", "match=Boat*", []string{}},
		{"Match with offset", "match=*card&offset=1", []string{"Visa card"}},
		{"Match with limit", "match=*&limit=2", []string{"Car", "Student loan"}},
		{"Offset and limit", "offset=1&limit=2", []string{"Student loan", "Master card"}},
		{"Profile and type", fmt.Sprintf("profile=%s&type=car_loan", p1.Data.ID), []string{"Car"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.DebtListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			names := make([]string, 0, len(re.Data))
			for _, d := range re.Data {
				names = append(names, d.Name)
			}

			assert.Equal(t, tt.names, names, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsGetFilterErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid profile ID", "profile=not-a-uuid"},
		{"Invalid archived", "archived=maybe"},
		{"Invalid offset", "offset=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var re v1.DebtListResponse
			test.DecodeResponse(t, &r, &re)
			assert.NotNil(t, re.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsMatchPagination() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	for i := 0; i < 5; i++ {
		_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: profile.Data.ID, Name: fmt.Sprintf("Card %d", i)})
	}
	_ = createTestDebt(suite.T(), v1.DebtEditable{ProfileID: profile.Data.ID, Name: "Mortgage"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/debts?match=Card*&offset=1&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Pagination{Count: 2, Offset: 1, Limit: 2, Total: 5}, *response.Pagination)
	assert.Equal(suite.T(), "Card 1", response.Data[0].Name)
	assert.Equal(suite.T(), "Card 2", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestDebtsUpdate() {
	d := createTestDebt(suite.T(), v1.DebtEditable{Name: "Credit card", Note: "Keep me"})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, d v1.Debt)
	}{
		{
			"Name",
			map[string]any{"name": "Visa"},
			http.StatusOK,
			func(t *testing.T, d v1.Debt) {
				assert.Equal(t, "Visa", d.Name)
				assert.Equal(t, "Keep me", d.Note)
			},
		},
		{
			"Balance",
			map[string]any{"currentBalance": "1200", "interestRate": "0", "monthlyPayment": "100"},
			http.StatusOK,
			func(t *testing.T, d v1.Debt) {
				assert.True(t, d.CurrentBalance.Equal(decimal.NewFromFloat(1200)), d.CurrentBalance.String())
				assert.Equal(t, 12, d.PayoffMonths)
			},
		},
		{
			"Archive",
			map[string]any{"archived": true},
			http.StatusOK,
			func(t *testing.T, d v1.Debt) {
				assert.True(t, d.Archived)
			},
		},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"Payment below minimum", map[string]any{"monthlyPayment": "10"}, http.StatusBadRequest, nil},
		{"Balance above total", map[string]any{"currentBalance": "5000"}, http.StatusBadRequest, nil},
		{"Invalid type", map[string]any{"type": "loan_shark"}, http.StatusBadRequest, nil},
		{"Non-existing profile", map[string]any{"profileId": "a29bd123-beec-47de-a9cd-b6f7483fe00f"}, http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, d.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DebtResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsUpdateNonExisting() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/debts/a29bd123-beec-47de-a9cd-b6f7483fe00f", `{ "name": "Nope" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDebtsPayment() {
	tests := []struct {
		name    string
		body    any
		status  int
		balance float64
	}{
		{"Regular payment", map[string]any{"amount": "150"}, http.StatusOK, 1850},
		{"Fractional payment", map[string]any{"amount": 0.25}, http.StatusOK, 1999.75},
		{"Overpayment", map[string]any{"amount": "2500"}, http.StatusOK, 0},
		{"Exact payment", map[string]any{"amount": "2000"}, http.StatusOK, 0},
		{"Zero", map[string]any{"amount": "0"}, http.StatusBadRequest, 2000},
		{"Negative", map[string]any{"amount": "-5"}, http.StatusBadRequest, 2000},
		{"Missing amount", map[string]any{}, http.StatusBadRequest, 2000},
		{"Broken body", `{ "amount": "many" }`, http.StatusBadRequest, 2000},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			d := createTestDebt(t, v1.DebtEditable{})

			r := test.Request(t, http.MethodPost, d.Data.Links.Self+"/payments", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DebtResponse
			test.DecodeResponse(t, &r, &response)
			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
			}

			// The stored balance matches the expected one
			r = test.Request(t, http.MethodGet, d.Data.Links.Self, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.CurrentBalance.Equal(decimal.NewFromFloat(tt.balance)), response.Data.CurrentBalance.String())
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsPaymentRecomputes() {
	d := createTestDebt(suite.T(), v1.DebtEditable{
		CurrentBalance: decimal.NewFromFloat(1200),
		MonthlyPayment: decimal.NewFromFloat(100),
	})
	assert.Equal(suite.T(), 12, d.Data.PayoffMonths)

	r := test.Request(suite.T(), http.MethodPost, d.Data.Links.Self+"/payments", map[string]any{"amount": "600"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentBalance.Equal(decimal.NewFromFloat(600)), response.Data.CurrentBalance.String())
	assert.Equal(suite.T(), 6, response.Data.PayoffMonths)
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromFloat(3000)), "the total amount must not change")

	r = test.Request(suite.T(), http.MethodPost, d.Data.Links.Self+"/payments", map[string]any{"amount": "1000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentBalance.IsZero(), response.Data.CurrentBalance.String())
	assert.Equal(suite.T(), 0, response.Data.PayoffMonths)
}

func (suite *TestSuiteStandard) TestDebtsPaymentNonExisting() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts/a29bd123-beec-47de-a9cd-b6f7483fe00f/payments", `{ "amount": "10" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts/NotParseableAsUUID/payments", `{ "amount": "10" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDebtsPaymentOptions() {
	path := createTestDebt(suite.T(), v1.DebtEditable{}).Data.Links.Self + "/payments"
	r := test.Request(suite.T(), http.MethodOptions, path, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/debts/6a463cc8-1938-474a-8aeb-0482b82ffb6f/payments", "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestDebtsDelete() {
	d := createTestDebt(suite.T(), v1.DebtEditable{})

	r := test.Request(suite.T(), http.MethodDelete, d.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, d.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The profile is not affected
	r = test.Request(suite.T(), http.MethodGet, d.Data.Links.Profile, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
