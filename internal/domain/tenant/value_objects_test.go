//go:build unit

package tenant_test

import (
	"strings"
	"testing"

	"barberbook/internal/domain/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
		errIs error
	}

	cases := []testCase{
		{name: "基本成功ケース", input: "fadehouse", want: "fadehouse"},
		{name: "大文字は小文字に正規化", input: "FadeHouse", want: "fadehouse"},
		{name: "前後の空白は除去", input: "  fadehouse  ", want: "fadehouse"},
		{name: "数字のみもOK", input: "123", want: "123"},
		{name: "最小長3文字", input: "abc", want: "abc"},
		{name: "2文字はNG", input: "ab", errIs: tenant.ErrInvalidSlug},
		{name: "40文字超はNG", input: strings.Repeat("a", 41), errIs: tenant.ErrInvalidSlug},
		{name: "ハイフンはNG", input: "fade-house", errIs: tenant.ErrInvalidSlug},
		{name: "空文字はNG", input: "", errIs: tenant.ErrInvalidSlug},
		{name: "予約語wwwはNG", input: "www", errIs: tenant.ErrReservedSlug},
		{name: "予約語apiはNG", input: "api", errIs: tenant.ErrReservedSlug},
		{name: "予約語は大文字でもNG", input: "Admin", errIs: tenant.ErrReservedSlug},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, err := tenant.NewSlug(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, slug.Value())
		})
	}
}

func TestResolveHost(t *testing.T) {
	const platform = "barberbook.app"

	type testCase struct {
		name     string
		host     string
		wantSlug string
		wantOK   bool
	}

	cases := []testCase{
		{name: "サブドメインはスラッグになる", host: "fadehouse.barberbook.app", wantSlug: "fadehouse", wantOK: true},
		{name: "ポート番号は無視", host: "fadehouse.barberbook.app:8080", wantSlug: "fadehouse", wantOK: true},
		{name: "大文字ホストも解決できる", host: "FadeHouse.Barberbook.App", wantSlug: "fadehouse", wantOK: true},
		{name: "素のプラットフォームドメインはNG", host: "barberbook.app", wantOK: false},
		{name: "wwwはNG", host: "www.barberbook.app", wantOK: false},
		{name: "予約サブドメインはNG", host: "api.barberbook.app", wantOK: false},
		{name: "多段ラベルはNG", host: "a.b.barberbook.app", wantOK: false},
		{name: "短すぎるラベルはNG", host: "ab.barberbook.app", wantOK: false},
		{name: "無関係なドメインはNG", host: "fadehouse.example.com", wantOK: false},
		{name: "部分一致のサフィックスはNG", host: "fadehousebarberbook.app", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, ok := tenant.ResolveHost(tc.host, platform)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantSlug, slug.Value())
			}
		})
	}
}
