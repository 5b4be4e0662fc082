package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/pizzavalue/internal/domain"
)

// newTestPizza builds a pizza whose ratio is area/price
func newTestPizza(t testing.TB, name string, price string, area float64) domain.Pizza {
	t.Helper()
	p, err := domain.NewPizza(name, domain.Diameter(1), decimal.RequireFromString(price), area)
	require.NoError(t, err)
	return p
}

func names(items []domain.Pizza) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name()
	}
	return out
}

func demoMenu(t testing.TB) []domain.Pizza {
	return []domain.Pizza{
		newTestPizza(t, "Small Pizza", "4.80", 530.929158456675),
		newTestPizza(t, "Large Pizza", "5.50", 706.8583470577034),
		newTestPizza(t, "Party Pizza", "13.00", 1518),
	}
}

func TestBest_DemoMenu(t *testing.T) {
	best, err := Best(demoMenu(t))
	require.NoError(t, err)
	assert.Equal(t, "Large Pizza", best.Name())
	assert.InDelta(t, 128.52, best.ValueRatio(), 0.005)
}

func TestRank_DemoMenu(t *testing.T) {
	items := demoMenu(t)

	ranked, err := Rank(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"Large Pizza", "Party Pizza", "Small Pizza"}, names(ranked))

	// Input order untouched
	assert.Equal(t, []string{"Small Pizza", "Large Pizza", "Party Pizza"}, names(items))
}

func TestBest_TieGoesToFirst(t *testing.T) {
	items := []domain.Pizza{
		newTestPizza(t, "A", "2", 100),
		newTestPizza(t, "B", "1", 50),
		newTestPizza(t, "C", "4", 200),
	}

	best, err := Best(items)
	require.NoError(t, err)
	assert.Equal(t, "A", best.Name())
}

func TestRank_StableForTies(t *testing.T) {
	items := []domain.Pizza{
		newTestPizza(t, "Tie1", "1", 50),
		newTestPizza(t, "Top", "1", 90),
		newTestPizza(t, "Tie2", "2", 100),
		newTestPizza(t, "Free", "0", 10),
		newTestPizza(t, "Tie3", "4", 200),
	}

	ranked, err := Rank(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"Top", "Tie1", "Tie2", "Tie3", "Free"}, names(ranked))
}

func TestRank_Properties(t *testing.T) {
	items := []domain.Pizza{
		newTestPizza(t, "a", "3.10", 300),
		newTestPizza(t, "b", "0", 120),
		newTestPizza(t, "c", "7.25", 900),
		newTestPizza(t, "d", "1.99", 45),
		newTestPizza(t, "e", "12", 1518),
		newTestPizza(t, "f", "3.10", 300),
	}

	ranked, err := Rank(items)
	require.NoError(t, err)

	t.Run("permutation of input", func(t *testing.T) {
		assert.ElementsMatch(t, names(items), names(ranked))
	})

	t.Run("non-increasing ratio", func(t *testing.T) {
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].ValueRatio(), ranked[i].ValueRatio())
		}
	})

	t.Run("best is first ranked", func(t *testing.T) {
		best, err := Best(items)
		require.NoError(t, err)
		assert.Equal(t, ranked[0].Name(), best.Name())
	})
}

func TestEmptyInput(t *testing.T) {
	_, err := Best(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = Rank([]domain.Pizza{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func BenchmarkRank(b *testing.B) {
	items := make([]domain.Pizza, 0, 256)
	for i := 0; i < 256; i++ {
		items = append(items, newTestPizza(b, "p", "9.99", float64(100+(i*37)%500)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Rank(items)
	}
}

func BenchmarkBest(b *testing.B) {
	items := demoMenu(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Best(items)
	}
}
