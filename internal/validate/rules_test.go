package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"plain", "150", 150, nil},
		{"trimmed", "  42  ", 42, nil},
		{"zero rejected", "0", 0, ErrNotPositive},
		{"decimal rejected", "10.5", 0, ErrNotInteger},
		{"comma decimal rejected", "10,5", 0, ErrNotInteger},
		{"negative rejected", "-3", 0, ErrNotInteger},
		{"text rejected", "сто", 0, ErrNotInteger},
		{"inner space rejected", "1 000", 0, ErrNotInteger},
		{"empty rejected", "", 0, ErrNotInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EmployeeCount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCount_AllowsZero(t *testing.T) {
	got, err := Count("0")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDecimal_CommaNormalization(t *testing.T) {
	got, err := Decimal("1,5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = Decimal("2.25")
	require.NoError(t, err)
	assert.Equal(t, 2.25, got)

	_, err = Decimal("полторы")
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestPositiveDecimal(t *testing.T) {
	_, err := PositiveDecimal("0")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = PositiveDecimal("-1")
	assert.ErrorIs(t, err, ErrNotPositive)

	got, err := PositiveDecimal("30")
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)
}

func TestNonNegativeDecimal(t *testing.T) {
	got, err := NonNegativeDecimal("0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = NonNegativeDecimal("-250")
	assert.ErrorIs(t, err, ErrNegative)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"10", 10},
		{"10%", 10},
		{" 15 % ", 15},
		{"12,5%", 12.5},
		{"150", 150}, // above 100 is accepted on purpose
	}
	for _, tt := range tests {
		got, err := Percent(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := Percent("десять")
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ivan@example.com", Email("ivan@example.com"))
	assert.Equal(t, "a.b+c@mail.co.uk", Email(" a.b+c@mail.co.uk "))
	assert.Equal(t, "", Email("not-an-email"))
	assert.Equal(t, "", Email("@example.com"))
	assert.Equal(t, "", Email(""))
}

func TestINN(t *testing.T) {
	got, err := INN("7707083893")
	require.NoError(t, err)
	assert.Equal(t, "7707083893", got)

	got, err = INN("500100732259")
	require.NoError(t, err)
	assert.Equal(t, "500100732259", got)

	for _, bad := range []string{"12345", "12345678901", "77070838-3", "abcdefghij"} {
		_, err := INN(bad)
		assert.ErrorIs(t, err, ErrBadINN, bad)
	}
}
