package area

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/pizzavalue/internal/domain"
)

func circle(d float64) float64 {
	return math.Pi * math.Pow(d/2, 2)
}

func TestCompute_Diameter(t *testing.T) {
	for _, d := range []float64{0.5, 1, 26, 30, 33.3, 1000} {
		got, err := Compute(domain.Diameter(d))
		require.NoError(t, err)
		assert.InEpsilon(t, circle(d), got, 1e-9, "diameter %v", d)
	}
}

func TestCompute_Rectangle(t *testing.T) {
	tests := []struct {
		w, h float64
	}{
		{46, 33},
		{1, 1},
		{12.5, 40},
		{0.1, 300},
	}

	for _, tt := range tests {
		got, err := Compute(domain.Rectangle{Width: tt.w, Height: tt.h})
		require.NoError(t, err)
		assert.InEpsilon(t, tt.w*tt.h, got, 1e-9)

		text := domain.RawText(domain.Rectangle{Width: tt.w, Height: tt.h}.String())
		got, err = Compute(text)
		require.NoError(t, err)
		assert.InEpsilon(t, tt.w*tt.h, got, 1e-9, "descriptor %q", text)
	}
}

func TestCompute_TextForms(t *testing.T) {
	want := circle(26)

	tests := []struct {
		name string
		in   domain.SizeDescriptor
	}{
		{"numeric", domain.Diameter(26)},
		{"lowercase unit", domain.RawText("26cm")},
		{"uppercase unit", domain.RawText("26CM")},
		{"mixed case unit", domain.RawText("26Cm")},
		{"padded with space before unit", domain.RawText(" 26 cm ")},
		{"no unit", domain.RawText("26")},
		{"decimal", domain.RawText("26.0cm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.in)
			require.NoError(t, err)
			assert.InEpsilon(t, want, got, 1e-9)
		})
	}
}

func TestCompute_RectangleText(t *testing.T) {
	tests := []struct {
		name string
		in   domain.RawText
	}{
		{"compact", "46x33cm"},
		{"uppercase separator", "46X33CM"},
		{"spaced", " 46 x 33 cm"},
		{"no unit", "46x33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, 1518.0, got, 1e-9)
		})
	}
}

func TestCompute_ConcreteMenu(t *testing.T) {
	small, err := Compute(domain.RawText("26cm"))
	require.NoError(t, err)
	large, err := Compute(domain.RawText("30cm"))
	require.NoError(t, err)
	party, err := Compute(domain.RawText("46x33cm"))
	require.NoError(t, err)

	assert.InDelta(t, 530.93, small, 0.005)
	assert.InDelta(t, 706.86, large, 0.005)
	assert.InDelta(t, 1518.00, party, 0.005)
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   domain.SizeDescriptor
	}{
		{"missing second dimension", domain.RawText("26x")},
		{"missing first dimension", domain.RawText("x33cm")},
		{"three dimensions", domain.RawText("1x2x3cm")},
		{"negative diameter text", domain.RawText("-5cm")},
		{"zero diameter text", domain.RawText("0cm")},
		{"negative width", domain.RawText("-4x5cm")},
		{"zero height", domain.RawText("4x0")},
		{"not a number", domain.RawText("large")},
		{"unit only", domain.RawText("cm")},
		{"empty", domain.RawText("")},
		{"blank", domain.RawText("   ")},
		{"nan", domain.RawText("NaN")},
		{"infinite", domain.RawText("inf cm")},
		{"negative diameter", domain.Diameter(-5)},
		{"zero diameter", domain.Diameter(0)},
		{"infinite diameter", domain.Diameter(math.Inf(1))},
		{"zero width rectangle", domain.Rectangle{Width: 0, Height: 3}},
		{"negative height rectangle", domain.Rectangle{Width: 3, Height: -1}},
		{"nil", nil},
		{"rectangle area overflows", domain.RawText("1e200x1e200cm")},
		{"diameter area overflows", domain.Diameter(1e308)},
		{"rectangle area underflows", domain.RawText("1e-200x1e-200cm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidSize)
			assert.Zero(t, got)
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	for _, in := range []domain.SizeDescriptor{
		domain.RawText("26cm"),
		domain.RawText("46x33cm"),
		domain.Diameter(30),
	} {
		first, err := Compute(in)
		require.NoError(t, err)
		second, err := Compute(in)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   domain.SizeDescriptor
		want domain.SizeDescriptor
	}{
		{"diameter text", domain.RawText("26cm"), domain.Diameter(26)},
		{"rectangle text", domain.RawText("46x33cm"), domain.Rectangle{Width: 46, Height: 33}},
		{"diameter passes through", domain.Diameter(30), domain.Diameter(30)},
		{"rectangle passes through", domain.Rectangle{Width: 2, Height: 3}, domain.Rectangle{Width: 2, Height: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := Normalize(got)
			require.NoError(t, err)
			assert.Equal(t, got, again, "normalizing twice must not change the result")
		})
	}
}
