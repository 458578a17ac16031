package articlerequest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestDecode(t *testing.T) {
	data, err := Decode(newRequest(`{"articleTitle":"T","articleBody":""}`))
	require.NoError(t, err)
	require.NotNil(t, data.ArticleTitle)
	require.Equal(t, "T", *data.ArticleTitle)
	require.NotNil(t, data.ArticleBody)
	require.Equal(t, "", *data.ArticleBody)

	f := data.Fields()
	require.Equal(t, data.ArticleTitle, f.Title)
	require.Equal(t, data.ArticleBody, f.Body)
}

func TestDecode_MissingAndNull(t *testing.T) {
	data, err := Decode(newRequest(`{"articleTitle":null,"unknown":1}`))
	require.NoError(t, err)
	require.True(t, data.Fields().Empty())
}

func TestDecode_EmptyBody(t *testing.T) {
	data, err := Decode(newRequest(""))
	require.NoError(t, err)
	require.True(t, data.Fields().Empty())
}

func TestDecode_NotJSON(t *testing.T) {
	_, err := Decode(newRequest(`{"articleTitle":`))
	require.Error(t, err)

	_, err = Decode(newRequest(`{"articleTitle": 5}`))
	require.Error(t, err)
}

func TestDecode_IgnoresContentType(t *testing.T) {
	for _, ct := range []string{"", "text/plain", "application/x-www-form-urlencoded"} {
		r := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(`{"articleTitle":"T"}`))
		if ct != "" {
			r.Header.Set("Content-Type", ct)
		}

		data, err := Decode(r)
		require.NoError(t, err, ct)
		require.NotNil(t, data.ArticleTitle, ct)
		require.Equal(t, "T", *data.ArticleTitle, ct)
		require.Nil(t, data.ArticleBody, ct)
	}
}
