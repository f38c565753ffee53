package requests

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharField(t *testing.T) {
	tests := []struct {
		name    string
		field   CharField
		value   any
		want    any
		wantErr string
	}{
		{
			name:  "строка принимается",
			field: CharField{Opts: Options{Nullable: true}},
			value: "hello",
			want:  "hello",
		},
		{
			name:  "пустая строка допустима для nullable",
			field: CharField{Opts: Options{Nullable: true}},
			value: "",
			want:  "",
		},
		{
			name:    "пустая строка недопустима без nullable",
			field:   CharField{Opts: Options{Required: true}},
			value:   "",
			wantErr: "field cannot be empty",
		},
		{
			name:    "число отклоняется",
			field:   CharField{Opts: Options{Nullable: true}},
			value:   json.Number("42"),
			wantErr: "must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.Validate(tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailField(t *testing.T) {
	field := EmailField{Opts: Options{Nullable: true}}

	tests := []struct {
		name    string
		value   any
		wantErr string
	}{
		{name: "адрес с собакой принимается", value: "a@b.com"},
		{name: "строка без собаки отклоняется", value: "not-an-email", wantErr: "invalid email format"},
		{name: "не строка отклоняется", value: json.Number("1"), wantErr: "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := field.Validate(tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPhoneField(t *testing.T) {
	field := PhoneField{Opts: Options{Nullable: true}}

	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "строка из 11 цифр с ведущей 7", value: "79175002040", want: "79175002040"},
		{name: "число из 11 цифр с ведущей 7", value: json.Number("79175002040"), want: "79175002040"},
		{name: "короткий номер отклоняется", value: "791750020", wantErr: true},
		{name: "длинный номер отклоняется", value: "791750020401", wantErr: true},
		{name: "ведущая 8 отклоняется", value: "89175002040", wantErr: true},
		{name: "буквы в номере отклоняются", value: "7917500204x", wantErr: true},
		{name: "дробное число отклоняется", value: json.Number("7917500.204"), wantErr: true},
		{name: "список отклоняется", value: []any{"79175002040"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.Validate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateField(t *testing.T) {
	field := DateField{Opts: Options{Nullable: true}}

	tests := []struct {
		name    string
		value   any
		want    time.Time
		wantErr string
	}{
		{
			name:  "дата в формате DD.MM.YYYY принимается",
			value: "01.01.1990",
			want:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "формат YYYY-MM-DD отклоняется", value: "1990-01-01", wantErr: "invalid date format"},
		{name: "несуществующая дата отклоняется", value: "32.01.1990", wantErr: "invalid date format"},
		{name: "пустая строка отклоняется", value: "", wantErr: "invalid date format"},
		{name: "не строка отклоняется", value: json.Number("19900101"), wantErr: "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.Validate(tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBirthDayField(t *testing.T) {
	field := BirthDayField{Opts: Options{Nullable: true}}
	currentYear := time.Now().Year()

	t.Run("возраст ровно MaxAge принимается", func(t *testing.T) {
		value := fmt.Sprintf("01.01.%d", currentYear-MaxAge)
		_, err := field.Validate(value)
		require.NoError(t, err)
	})

	t.Run("возраст больше MaxAge отклоняется", func(t *testing.T) {
		value := fmt.Sprintf("01.01.%d", currentYear-MaxAge-1)
		_, err := field.Validate(value)
		require.EqualError(t, err, "date is too old")
	})

	t.Run("некорректная дата отклоняется", func(t *testing.T) {
		_, err := field.Validate("XXX")
		require.EqualError(t, err, "invalid date format")
	})
}

func TestGenderField(t *testing.T) {
	field := GenderField{Opts: Options{Nullable: true}}

	tests := []struct {
		name    string
		value   any
		want    any
		wantErr bool
	}{
		{name: "0 принимается", value: json.Number("0"), want: 0},
		{name: "1 принимается", value: json.Number("1"), want: 1},
		{name: "2 принимается", value: json.Number("2"), want: 2},
		{name: "3 отклоняется", value: json.Number("3"), wantErr: true},
		{name: "отрицательное отклоняется", value: json.Number("-1"), wantErr: true},
		{name: "дробное отклоняется", value: json.Number("1.5"), wantErr: true},
		{name: "строка отклоняется", value: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.Validate(tt.value)
			if tt.wantErr {
				require.EqualError(t, err, "invalid gender value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientIDsField(t *testing.T) {
	field := ClientIDsField{Opts: Options{Required: true}}

	tests := []struct {
		name    string
		value   any
		want    []int
		wantErr string
	}{
		{
			name:  "список целых принимается",
			value: []any{json.Number("1"), json.Number("2"), json.Number("3")},
			want:  []int{1, 2, 3},
		},
		{
			name:  "список int принимается",
			value: []int{7, 8},
			want:  []int{7, 8},
		},
		{name: "пустой список отклоняется", value: []any{}, wantErr: "client ids cannot be empty"},
		{
			name:    "список со строкой отклоняется",
			value:   []any{json.Number("1"), "2"},
			wantErr: "must be a list of integers",
		},
		{
			name:    "список с дробным отклоняется",
			value:   []any{json.Number("1.5")},
			wantErr: "must be a list of integers",
		},
		{name: "не список отклоняется", value: "1,2,3", wantErr: "must be a list of integers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.Validate(tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
