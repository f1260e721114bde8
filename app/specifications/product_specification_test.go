package specifications

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByAllAbsent(t *testing.T) {
	conditions := FilterBy(ProductFilter{})

	require.Len(t, conditions, 1)
	assert.Equal(t, Condition{Column: "active", Op: OpEq, Value: true}, conditions[0])
}

func TestFilterByZeroValuesMeanAbsent(t *testing.T) {
	conditions := FilterBy(ProductFilter{
		Name:       "   ",
		MinPrice:   decimal.Zero,
		MaxPrice:   decimal.Zero,
		MinStock:   0,
		CategoryID: uuid.Nil,
	})

	require.Len(t, conditions, 1)
	assert.Equal(t, "active", conditions[0].Column)
}

func TestFilterByFullyPopulated(t *testing.T) {
	catID := uuid.New()
	conditions := FilterBy(ProductFilter{
		Name:       "laptop",
		MinPrice:   decimal.RequireFromString("100"),
		MaxPrice:   decimal.RequireFromString("2000"),
		MinStock:   1,
		CategoryID: catID,
	})

	require.Len(t, conditions, 6)
	// active guard always leads
	assert.Equal(t, "active", conditions[0].Column)

	assert.Equal(t, Condition{Column: "name", Op: OpContains, Value: "laptop"}, conditions[1])
	assert.Equal(t, "price", conditions[2].Column)
	assert.Equal(t, OpGte, conditions[2].Op)
	assert.Equal(t, "price", conditions[3].Column)
	assert.Equal(t, OpLte, conditions[3].Op)
	assert.Equal(t, Condition{Column: "stock", Op: OpGte, Value: 1}, conditions[4])
	assert.Equal(t, Condition{Column: "category_id", Op: OpEq, Value: catID}, conditions[5])
}

func TestFilterByTrimsName(t *testing.T) {
	conditions := FilterBy(ProductFilter{Name: "  mouse  "})

	require.Len(t, conditions, 2)
	assert.Equal(t, "mouse", conditions[1].Value)
}

func TestFilterByNegativePricesIgnored(t *testing.T) {
	conditions := FilterBy(ProductFilter{
		MinPrice: decimal.RequireFromString("-5"),
		MaxPrice: decimal.RequireFromString("-1"),
	})

	require.Len(t, conditions, 1)
}
