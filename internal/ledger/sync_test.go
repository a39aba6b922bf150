package ledger_test

import (
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/money"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) sync(fn func(*gorm.DB, uuid.UUID) (models.Expense, error), monthID uuid.UUID) models.Expense {
	var expense models.Expense
	err := models.DB.Transaction(func(tx *gorm.DB) (err error) {
		expense, err = fn(tx, monthID)
		return err
	})
	suite.Require().Nil(err)

	return expense
}

func syncCount(t models.ExpenseType) float64 {
	var m dto.Metric
	_ = ledger.SyncCounter(t).Write(&m)
	return m.GetCounter().GetValue()
}

func (suite *TestSuiteStandard) TestTitheExample() {
	june := suite.createTestMonth(alice, 2025, 6)

	_ = suite.createTestItem(models.KindIncome, june.ID, "Salary", "1000")
	tithe := suite.syntheticExpense(june.ID, models.ExpenseTithe)
	suite.assertDecimal("100.00", tithe.TotalAmount)
	suite.Assert().Equal(0, tithe.Order)
	suite.Assert().Equal("Tithe", tithe.Description)

	_ = suite.createTestItem(models.KindIncome, june.ID, "Freelance", "500")
	updated := suite.syntheticExpense(june.ID, models.ExpenseTithe)
	suite.assertDecimal("150.00", updated.TotalAmount)
	suite.Assert().Equal(tithe.ID, updated.ID, "The tithe is updated, not created again")
}

func (suite *TestSuiteStandard) TestTitheIdempotent() {
	june := suite.createTestMonth(alice, 2025, 6)
	_ = suite.createTestItem(models.KindIncome, june.ID, "Salary", "1234.56")

	first := suite.sync(ledger.SyncTithe, june.ID)
	second := suite.sync(ledger.SyncTithe, june.ID)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().True(first.TotalAmount.Equal(second.TotalAmount))
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseTithe), 1)
}

func (suite *TestSuiteStandard) TestTitheRounding() {
	tests := []struct {
		incomes []string
		tithe   string
	}{
		{[]string{"1000"}, "100"},
		{[]string{"0.05"}, "0.01"},
		{[]string{"0.04"}, "0"},
		{[]string{"1234.56"}, "123.46"},
		{[]string{"0.1", "0.2"}, "0.03"},
		{[]string{"333.33", "333.33", "333.34"}, "100"},
		{[]string{"19.99", "5.05"}, "2.5"},
	}

	for i, tt := range tests {
		month := suite.createTestMonth(alice, 2026, i+1)

		sum := decimal.Zero
		for _, amount := range tt.incomes {
			_ = suite.createTestItem(models.KindIncome, month.ID, "Income", amount)
			sum = sum.Add(decimal.RequireFromString(amount))
		}

		tithe := suite.syntheticExpense(month.ID, models.ExpenseTithe)
		suite.assertDecimal(tt.tithe, tithe.TotalAmount, tt.incomes)
		suite.Assert().True(sum.Mul(decimal.RequireFromString("0.10")).Round(2).Equal(tithe.TotalAmount))
	}
}

func (suite *TestSuiteStandard) TestTitheCreatedWithoutIncome() {
	june := suite.createTestMonth(alice, 2025, 6)

	tithe := suite.sync(ledger.SyncTithe, june.ID)
	suite.assertDecimal("0", tithe.TotalAmount)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseTithe), 1, "The tithe exists even without income")
}

func (suite *TestSuiteStandard) TestTitheDropsToZero() {
	june := suite.createTestMonth(alice, 2025, 6)
	salary := suite.createTestItem(models.KindIncome, june.ID, "Salary", "1000")

	err := suite.ledger.DeleteItem(suite.ctx, alice, models.KindIncome, salary.Base().ID)
	suite.Require().Nil(err)

	suite.assertDecimal("0", suite.syntheticExpense(june.ID, models.ExpenseTithe).TotalAmount)
}

func (suite *TestSuiteStandard) TestInvestmentTotalExample() {
	june := suite.createTestMonth(alice, 2025, 6)
	a := suite.createTestItem(models.KindInvestment, june.ID, "Index fund", "200")
	b := suite.createTestItem(models.KindInvestment, june.ID, "Bonds", "300")

	total := suite.syntheticExpense(june.ID, models.ExpenseInvestmentTotal)
	suite.assertDecimal("500.00", total.TotalAmount)
	suite.Assert().Equal(998, total.Order)

	suite.Require().Nil(suite.ledger.DeleteItem(suite.ctx, alice, models.KindInvestment, a.Base().ID))
	suite.Require().Nil(suite.ledger.DeleteItem(suite.ctx, alice, models.KindInvestment, b.Base().ID))

	total = suite.syntheticExpense(june.ID, models.ExpenseInvestmentTotal)
	suite.assertDecimal("0.00", total.TotalAmount, "The total stays at zero instead of being deleted")
}

func (suite *TestSuiteStandard) TestMiscTotal() {
	june := suite.createTestMonth(alice, 2025, 6)

	// No zero row is created
	suite.sync(ledger.SyncMiscTotal, june.ID)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseMiscTotal), 0)

	coffee := suite.createTestItem(models.KindMiscExpense, june.ID, "Coffee", "4.50")
	_ = suite.createTestItem(models.KindMiscExpense, june.ID, "Cinema", "30")

	total := suite.syntheticExpense(june.ID, models.ExpenseMiscTotal)
	suite.assertDecimal("34.50", total.TotalAmount)
	suite.Assert().Equal(999, total.Order)

	_, err := suite.ledger.UpdateItem(suite.ctx, alice, models.KindMiscExpense, coffee.Base().ID, fields("Coffee", "5.25"))
	suite.Require().Nil(err)
	suite.assertDecimal("35.25", suite.syntheticExpense(june.ID, models.ExpenseMiscTotal).TotalAmount)
}

func (suite *TestSuiteStandard) TestSyncOnlyOnAmountChange() {
	june := suite.createTestMonth(alice, 2025, 6)
	salary := suite.createTestItem(models.KindIncome, june.ID, "Salary", "1000")

	before := syncCount(models.ExpenseTithe)

	description := "Main salary"
	_, err := suite.ledger.UpdateItem(suite.ctx, alice, models.KindIncome, salary.Base().ID, ledger.ItemFields{Description: &description})
	suite.Require().Nil(err)
	suite.Assert().Equal(before, syncCount(models.ExpenseTithe), "Description changes do not sync")

	_, err = suite.ledger.UpdateItem(suite.ctx, alice, models.KindIncome, salary.Base().ID, ledger.ItemFields{Amount: decimalPtr("2000")})
	suite.Require().Nil(err)
	suite.Assert().Equal(before+1, syncCount(models.ExpenseTithe))
	suite.assertDecimal("200", suite.syntheticExpense(june.ID, models.ExpenseTithe).TotalAmount)
}

func (suite *TestSuiteStandard) TestExpensesDoNotSync() {
	june := suite.createTestMonth(alice, 2025, 6)
	_ = suite.createTestItem(models.KindExpense, june.ID, "Rent", "800")

	for _, t := range models.SyntheticTypes {
		suite.Assert().Len(suite.expensesOfType(june.ID, t), 0, "Creating an expense must not create %s", t)
	}
}

func (suite *TestSuiteStandard) TestSyncAll() {
	june := suite.createTestMonth(alice, 2025, 6)

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return ledger.SyncAll(tx, june.ID)
	})
	suite.Require().Nil(err)

	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseTithe), 1)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseInvestmentTotal), 0)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseMiscTotal), 0)

	_, err = ledger.Sync(models.DB, june.ID, models.ExpenseStandard)
	suite.Assert().ErrorIs(err, models.ErrExpenseTypeInvalid)
}

func (suite *TestSuiteStandard) TestResync() {
	june := suite.createTestMonth(alice, 2025, 6)
	july := suite.createTestMonth(bob, 2025, 7)

	// Items written without the ledger leave the totals stale
	for _, item := range []any{
		&models.Income{Item: models.Item{MonthID: june.ID, Description: "Salary"}, Amount: decimal.NewFromInt(2500)},
		&models.Investment{Item: models.Item{MonthID: june.ID, Description: "Fund"}, Amount: decimal.NewFromInt(100)},
		&models.MiscExpense{Item: models.Item{MonthID: july.ID, Description: "Taxi"}, Amount: decimal.NewFromInt(15)},
	} {
		suite.Require().Nil(models.DB.Create(item).Error)
	}

	count, err := suite.ledger.Resync(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, count)

	suite.assertDecimal("250", suite.syntheticExpense(june.ID, models.ExpenseTithe).TotalAmount)
	suite.assertDecimal("100", suite.syntheticExpense(june.ID, models.ExpenseInvestmentTotal).TotalAmount)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseMiscTotal), 0)

	suite.Assert().Len(suite.expensesOfType(july.ID, models.ExpenseTithe), 0, "No tithe for months without income")
	suite.assertDecimal("15", suite.syntheticExpense(july.ID, models.ExpenseMiscTotal).TotalAmount)

	// A second run changes nothing
	_, err = suite.ledger.Resync(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(suite.expensesOfType(june.ID, models.ExpenseTithe), 1)
}

func (suite *TestSuiteStandard) TestTitheMatchesMoneyPackage() {
	june := suite.createTestMonth(alice, 2025, 6)
	_ = suite.createTestItem(models.KindIncome, june.ID, "Salary", "4321.09")

	suite.Assert().True(money.Tithe(decimal.RequireFromString("4321.09")).Equal(suite.syntheticExpense(june.ID, models.ExpenseTithe).TotalAmount))
}
