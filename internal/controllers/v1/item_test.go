package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestItemsCreate() {
	month := suite.createTestMonth(alice, current())

	tests := []struct {
		kind models.Kind
		body map[string]any
	}{
		{models.KindIncome, map[string]any{"description": "Salary", "amount": "1000", "day": 5}},
		{models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "400", "paidAmount": "150"}},
		{models.KindInvestment, map[string]any{"description": "Fund", "amount": "50"}},
		{models.KindMiscExpense, map[string]any{"description": "  Coffee ", "amount": "5.5"}},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.kind), func(t *testing.T) {
			item := suite.createTestItem(month, tt.kind, tt.body)

			assert.Equal(t, tt.kind, item.Kind)
			assert.Equal(t, month.ID, item.MonthID)
			assert.Equal(t, tt.kind.FirstOrder(), item.Order, "The first item of a kind gets the first free order")
			assert.False(t, item.Computed)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/%s/%s", tt.kind.Collection(), item.ID), item.Links.Self)
			assert.Equal(t, month.Links.Self, item.Links.Month)
		})
	}

	items := suite.listItems(month, models.KindMiscExpense)
	suite.Require().Len(items, 1)
	suite.Assert().Equal("Coffee", items[0].Description, "Descriptions are trimmed")
	suite.assertDecimal("5.5", items[0].Amount)
	suite.Assert().Contains(items[0].Formatted.Amount, "5,50")

	incomes := suite.listItems(month, models.KindIncome)
	suite.Require().NotNil(incomes[0].Day)
	suite.Assert().Equal(5, *incomes[0].Day)
	suite.Assert().Contains(incomes[0].Formatted.Amount, "1.000,00")
	suite.Assert().Nil(incomes[0].TotalAmount)

	expenses := suite.listItems(month, models.KindExpense)
	rent, ok := computedExpense(expenses, models.ExpenseStandard)
	suite.Require().True(ok)
	suite.assertDecimal("400", rent.TotalAmount)
	suite.assertDecimal("150", rent.PaidAmount)
	suite.Assert().Nil(rent.Amount)
	suite.Assert().Contains(rent.Formatted.PaidAmount, "150,00")
}

func (suite *TestSuiteStandard) TestItemsCreateRoundsAmounts() {
	month := suite.createTestMonth(alice, current())
	salary := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10.005"})
	suite.assertDecimal("10.01", salary.Amount)
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Bonus", "amount": "10.005"})

	incomes := suite.listItems(month, models.KindIncome)
	suite.Require().Len(incomes, 2)
	suite.assertDecimal("10.01", incomes[1].Amount)
}

func (suite *TestSuiteStandard) TestItemsCreateOrder() {
	month := suite.createTestMonth(alice, current())

	for i, description := range []string{"Rent", "Power", "Water"} {
		item := suite.createTestItem(month, models.KindExpense, map[string]any{"description": description, "totalAmount": "10"})
		suite.Assert().Equal(i+1, item.Order)
	}
}

func (suite *TestSuiteStandard) TestItemsCreateExpenseAfterTithe() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})
	rent := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "800"})

	expenses := suite.listItems(month, models.KindExpense)
	tithe, ok := computedExpense(expenses, models.ExpenseTithe)
	suite.Require().True(ok)
	suite.Assert().NotEqual(tithe.Order, rent.Order)

	orders := map[int]bool{}
	for _, e := range expenses {
		suite.Assert().False(orders[e.Order], "Order %d is used twice", e.Order)
		orders[e.Order] = true
	}
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(rent.ID, expenses[1].ID, "The tithe lists first")
}

func (suite *TestSuiteStandard) TestItemsComputedExpenses() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Bonus", "amount": "234.56"})
	suite.createTestItem(month, models.KindInvestment, map[string]any{"description": "Fund", "amount": "50"})
	suite.createTestItem(month, models.KindMiscExpense, map[string]any{"description": "Coffee", "amount": "5.50"})
	suite.createTestItem(month, models.KindMiscExpense, map[string]any{"description": "Snack", "amount": "2.25"})

	expenses := suite.listItems(month, models.KindExpense)
	suite.Require().Len(expenses, 3)

	tithe, ok := computedExpense(expenses, models.ExpenseTithe)
	suite.Require().True(ok)
	suite.Assert().True(tithe.Computed)
	suite.Assert().Equal("Tithe", tithe.Description)
	suite.assertDecimal("123.46", tithe.TotalAmount, "The tithe is rounded half away from zero")

	investments, ok := computedExpense(expenses, models.ExpenseInvestmentTotal)
	suite.Require().True(ok)
	suite.assertDecimal("50", investments.TotalAmount)

	misc, ok := computedExpense(expenses, models.ExpenseMiscTotal)
	suite.Require().True(ok)
	suite.assertDecimal("7.75", misc.TotalAmount)

	// The tithe is listed first, the totals last
	suite.Assert().Equal(models.ExpenseTithe, expenses[0].Type)
	suite.Assert().Equal(models.ExpenseMiscTotal, expenses[2].Type)
}

func (suite *TestSuiteStandard) TestItemsCreateFail() {
	month := suite.createTestMonth(alice, current())
	past := suite.createTestMonth(alice, current().AddDate(0, -1))

	tests := []struct {
		name   string
		month  v1.Month
		kind   models.Kind
		body   any
		userID string
		status int
	}{
		{"No description", month, models.KindIncome, map[string]any{"amount": "10"}, alice, http.StatusBadRequest},
		{"Blank description", month, models.KindIncome, map[string]any{"description": "  ", "amount": "10"}, alice, http.StatusBadRequest},
		{"No amount", month, models.KindInvestment, map[string]any{"description": "Fund"}, alice, http.StatusBadRequest},
		{"Expense without total", month, models.KindExpense, map[string]any{"description": "Rent", "amount": "10"}, alice, http.StatusBadRequest},
		{"Zero income", month, models.KindIncome, map[string]any{"description": "Salary", "amount": "0"}, alice, http.StatusBadRequest},
		{"Negative misc expense", month, models.KindMiscExpense, map[string]any{"description": "Coffee", "amount": "-1"}, alice, http.StatusBadRequest},
		{"Negative paid amount", month, models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "10", "paidAmount": "-1"}, alice, http.StatusBadRequest},
		{"Amount not a number", month, models.KindIncome, `{ "description": "Salary", "amount": "lots" }`, alice, http.StatusBadRequest},
		{"Day out of range", month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10", "day": 32}, alice, http.StatusBadRequest},
		{"Empty body", month, models.KindIncome, "", alice, http.StatusBadRequest},
		{"Past month", past, models.KindIncome, map[string]any{"description": "Salary", "amount": "10"}, alice, http.StatusForbidden},
		{"Other user", month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10"}, bob, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("%s/%s", tt.month.Links.Self, tt.kind.Collection()), tt.body, test.User(tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ItemResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
		})
	}

	suite.Assert().Empty(suite.listItems(month, models.KindIncome))
	suite.Assert().Empty(suite.listItems(month, models.KindExpense), "Failed creates must not leave computed expenses")
}

func (suite *TestSuiteStandard) TestItemsCreateByPeriod() {
	suite.createTestMonth(alice, current())

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/months/%s/incomes", current()), map[string]any{"description": "Salary", "amount": "10"}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestItemsGet() {
	month := suite.createTestMonth(alice, current())
	income := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10"})

	r := test.Request(suite.T(), http.MethodGet, income.Links.Self, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(income.ID, response.Data.ID)
	suite.Assert().Equal("Salary", response.Data.Description)

	r = test.Request(suite.T(), http.MethodOptions, income.Links.Self, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestItemsGetFail() {
	month := suite.createTestMonth(alice, current())
	income := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10"})

	tests := []struct {
		name   string
		url    string
		userID string
		status int
	}{
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/incomes/%s", uuid.New()), alice, http.StatusNotFound},
		{"Not a UUID", "http://example.com/v1/incomes/salary", alice, http.StatusBadRequest},
		{"Wrong kind", fmt.Sprintf("http://example.com/v1/investments/%s", income.ID), alice, http.StatusNotFound},
		{"Other user", income.Links.Self, bob, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", test.User(tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestItemsListFilter() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "10"})
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Sale of bike", "amount": "10"})
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Bonus", "amount": "10"})

	tests := []struct {
		filter string
		count  int
	}{
		{"", 3},
		{"sal*", 2},
		{"SALARY", 1},
		{"*bike", 1},
		{"rent", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.filter, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?description=%s", month.Links.Incomes, tt.filter), "", test.User(alice))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ItemListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestItemsListEmpty() {
	month := suite.createTestMonth(alice, current())

	r := test.Request(suite.T(), http.MethodGet, month.Links.Investments, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestItemsUpdate() {
	month := suite.createTestMonth(alice, current())
	income := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000", "day": 5})

	r := test.Request(suite.T(), http.MethodPatch, income.Links.Self, map[string]any{"amount": "2000"}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("2000", response.Data.Amount)
	suite.Assert().Equal("Salary", response.Data.Description, "Fields that are not sent keep their value")
	suite.Require().NotNil(response.Data.Day)

	tithe, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)
	suite.Require().True(ok)
	suite.assertDecimal("200", tithe.TotalAmount, "Changing an income updates the tithe")

	// An explicit null removes the day
	r = test.Request(suite.T(), http.MethodPatch, income.Links.Self, `{ "day": null }`, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.Day)
}

func (suite *TestSuiteStandard) TestItemsUpdateExpense() {
	month := suite.createTestMonth(alice, current())
	rent := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "400"})

	r := test.Request(suite.T(), http.MethodPatch, rent.Links.Self, map[string]any{"paidAmount": "400", "description": "Rent and fees"}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("400", response.Data.PaidAmount)
	suite.assertDecimal("400", response.Data.TotalAmount)
	suite.Assert().Equal("Rent and fees", response.Data.Description)
}

func (suite *TestSuiteStandard) TestItemsUpdateComputed() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})

	tithe, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)
	suite.Require().True(ok)

	// Paying a computed expense is allowed
	r := test.Request(suite.T(), http.MethodPatch, tithe.Links.Self, map[string]any{"paidAmount": "100", "day": 10}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("100", response.Data.PaidAmount)
	suite.assertDecimal("100", response.Data.TotalAmount)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Total amount", map[string]any{"totalAmount": "50"}},
		{"Description", map[string]any{"description": "Offering"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tithe.Links.Self, tt.body, test.User(alice))
			test.AssertHTTPStatus(t, &r, http.StatusForbidden)
			assert.Equal(t, models.ErrSyntheticExpenseReadOnly.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestItemsUpdateFail() {
	month := suite.createTestMonth(alice, current())
	income := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})

	tests := []struct {
		name   string
		url    string
		body   any
		userID string
		status int
	}{
		{"Zero amount", income.Links.Self, map[string]any{"amount": "0"}, alice, http.StatusBadRequest},
		{"Blank description", income.Links.Self, map[string]any{"description": ""}, alice, http.StatusBadRequest},
		{"Broken body", income.Links.Self, `{ "amount": [] }`, alice, http.StatusBadRequest},
		{"Empty body", income.Links.Self, "", alice, http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/incomes/%s", uuid.New()), map[string]any{"amount": "5"}, alice, http.StatusNotFound},
		{"Other user", income.Links.Self, map[string]any{"amount": "5"}, bob, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.url, tt.body, test.User(tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	tithe, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)
	suite.Require().True(ok)
	suite.assertDecimal("100", tithe.TotalAmount, "Failed updates must not change the tithe")
}

func (suite *TestSuiteStandard) TestItemsPastMonthReadOnly() {
	past := suite.createTestMonth(alice, current().AddDate(0, -1))

	// Items of past months can only be created through the database
	income := models.Income{Item: models.Item{MonthID: past.ID, Description: "Salary"}, Amount: decimal.NewFromInt(100)}
	suite.Require().Nil(models.DB.Create(&income).Error)
	url := fmt.Sprintf("http://example.com/v1/incomes/%s", income.ID)

	r := test.Request(suite.T(), http.MethodGet, url, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"amount": "5"}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	suite.Assert().Equal(models.ErrMonthNotEditable.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodDelete, url, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPut, past.Links.Incomes+"/order", v1.OrderEditable{IDs: []uuid.UUID{income.ID}}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestItemsDelete() {
	month := suite.createTestMonth(alice, current())
	salary := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Bonus", "amount": "500"})

	r := test.Request(suite.T(), http.MethodDelete, salary.Links.Self, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, salary.Links.Self, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	tithe, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)
	suite.Require().True(ok)
	suite.assertDecimal("50", tithe.TotalAmount, "Deleting an income updates the tithe")
}

func (suite *TestSuiteStandard) TestItemsDeleteLastKeepsComputed() {
	month := suite.createTestMonth(alice, current())
	fund := suite.createTestItem(month, models.KindInvestment, map[string]any{"description": "Fund", "amount": "50"})

	r := test.Request(suite.T(), http.MethodDelete, fund.Links.Self, "", test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	total, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseInvestmentTotal)
	suite.Require().True(ok, "Computed expenses are updated to zero, not deleted")
	suite.assertDecimal("0", total.TotalAmount)
}

func (suite *TestSuiteStandard) TestItemsDeleteFail() {
	month := suite.createTestMonth(alice, current())
	income := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})

	tithe, ok := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)
	suite.Require().True(ok)

	tests := []struct {
		name   string
		url    string
		userID string
		status int
	}{
		{"Computed expense", tithe.Links.Self, alice, http.StatusForbidden},
		{"Other user", income.Links.Self, bob, http.StatusForbidden},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/misc-expenses/%s", uuid.New()), alice, http.StatusNotFound},
		{"Not a UUID", "http://example.com/v1/expenses/rent", alice, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.url, "", test.User(tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestItemsReorder() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})

	rent := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "400"})
	power := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Power", "totalAmount": "60"})
	water := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Water", "totalAmount": "30"})

	r := test.Request(suite.T(), http.MethodPut, month.Links.Expenses+"/order", v1.OrderEditable{IDs: []uuid.UUID{water.ID, rent.ID, power.ID}}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ItemListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(water.ID, response.Data[0].ID)
	suite.Assert().Equal(1, response.Data[0].Order, "Reordered expenses start after the tithe")
	suite.Assert().Equal(3, response.Data[2].Order)

	expenses := suite.listItems(month, models.KindExpense)
	suite.Require().Len(expenses, 4)
	suite.Assert().Equal(models.ExpenseTithe, expenses[0].Type)
	suite.Assert().Equal([]string{"Tithe", "Water", "Rent", "Power"}, []string{expenses[0].Description, expenses[1].Description, expenses[2].Description, expenses[3].Description})
}

func (suite *TestSuiteStandard) TestItemsReorderIncomes() {
	month := suite.createTestMonth(alice, current())
	a := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "A", "amount": "1"})
	b := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "B", "amount": "1"})

	r := test.Request(suite.T(), http.MethodPut, month.Links.Incomes+"/order", v1.OrderEditable{IDs: []uuid.UUID{b.ID, a.ID}}, test.User(alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	incomes := suite.listItems(month, models.KindIncome)
	suite.Require().Len(incomes, 2)
	suite.Assert().Equal(b.ID, incomes[0].ID)
	suite.Assert().Equal(0, incomes[0].Order)
	suite.Assert().Equal(1, incomes[1].Order)

	// New items go to the end
	c := suite.createTestItem(month, models.KindIncome, map[string]any{"description": "C", "amount": "1"})
	suite.Assert().Equal(2, c.Order)
}

func (suite *TestSuiteStandard) TestItemsReorderFail() {
	month := suite.createTestMonth(alice, current())
	suite.createTestItem(month, models.KindIncome, map[string]any{"description": "Salary", "amount": "1000"})
	rent := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Rent", "totalAmount": "400"})
	power := suite.createTestItem(month, models.KindExpense, map[string]any{"description": "Power", "totalAmount": "60"})
	tithe, _ := computedExpense(suite.listItems(month, models.KindExpense), models.ExpenseTithe)

	tests := []struct {
		name   string
		body   any
		userID string
		status int
	}{
		{"Missing item", v1.OrderEditable{IDs: []uuid.UUID{rent.ID}}, alice, http.StatusBadRequest},
		{"Duplicate item", v1.OrderEditable{IDs: []uuid.UUID{rent.ID, rent.ID}}, alice, http.StatusBadRequest},
		{"Unknown item", v1.OrderEditable{IDs: []uuid.UUID{rent.ID, uuid.New()}}, alice, http.StatusBadRequest},
		{"Computed expense", v1.OrderEditable{IDs: []uuid.UUID{rent.ID, power.ID, tithe.ID}}, alice, http.StatusBadRequest},
		{"Broken body", `{ "ids": "all" }`, alice, http.StatusBadRequest},
		{"Empty body", "", alice, http.StatusBadRequest},
		{"Other user", v1.OrderEditable{IDs: []uuid.UUID{power.ID, rent.ID}}, bob, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, month.Links.Expenses+"/order", tt.body, test.User(tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	expenses := suite.listItems(month, models.KindExpense)
	suite.Require().Len(expenses, 3)
	suite.Assert().Equal(rent.ID, expenses[1].ID, "Failed reorders keep the order")
}
